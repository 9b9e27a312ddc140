package service

import (
	"github.com/stretchr/testify/mock"
)

// MockResetTokenService is a mock for service.ResetTokenService.
type MockResetTokenService struct {
	mock.Mock
}

// MockResetTokenService_Expecter provides the fluent expectation API.
type MockResetTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockResetTokenService) EXPECT() *MockResetTokenService_Expecter {
	return &MockResetTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockResetTokenService) Generate() (string, string, error) {
	ret := _m.Called()

	return ret.String(0), ret.String(1), ret.Error(2)
}

func (_e *MockResetTokenService_Expecter) Generate() *mock.Call {
	return _e.mock.On("Generate")
}

func (_m *MockResetTokenService) Digest(raw string) string {
	ret := _m.Called(raw)

	return ret.String(0)
}

func (_e *MockResetTokenService_Expecter) Digest(raw any) *mock.Call {
	return _e.mock.On("Digest", raw)
}

// NewMockResetTokenService creates a new mock bound to the test lifecycle.
func NewMockResetTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResetTokenService {
	m := &MockResetTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
