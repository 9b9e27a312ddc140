package service

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock for service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// MockEventPublisher_Expecter provides the fluent expectation API.
type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

func (_m *MockEventPublisher) PublishPaymentEvent(ctx context.Context, event *service.PaymentEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (_e *MockEventPublisher_Expecter) PublishPaymentEvent(ctx any, event any) *mock.Call {
	return _e.mock.On("PublishPaymentEvent", ctx, event)
}

func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

func (_e *MockEventPublisher_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

// NewMockEventPublisher creates a new mock bound to the test lifecycle.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
