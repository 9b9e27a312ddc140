package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock for service.Mailer.
type MockMailer struct {
	mock.Mock
}

// MockMailer_Expecter provides the fluent expectation API.
type MockMailer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMailer) EXPECT() *MockMailer_Expecter {
	return &MockMailer_Expecter{mock: &_m.Mock}
}

func (_m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	ret := _m.Called(ctx, to, subject, body)

	return ret.Error(0)
}

func (_e *MockMailer_Expecter) Send(ctx any, to any, subject any, body any) *mock.Call {
	return _e.mock.On("Send", ctx, to, subject, body)
}

// NewMockMailer creates a new mock bound to the test lifecycle.
func NewMockMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
