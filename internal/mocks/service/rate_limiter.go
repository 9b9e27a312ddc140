package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRateLimiter is a mock for service.RateLimiter.
type MockRateLimiter struct {
	mock.Mock
}

// MockRateLimiter_Expecter provides the fluent expectation API.
type MockRateLimiter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRateLimiter) EXPECT() *MockRateLimiter_Expecter {
	return &MockRateLimiter_Expecter{mock: &_m.Mock}
}

func (_m *MockRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	ret := _m.Called(ctx, key, limit, window)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockRateLimiter_Expecter) Allow(ctx any, key any, limit any, window any) *mock.Call {
	return _e.mock.On("Allow", ctx, key, limit, window)
}

// NewMockRateLimiter creates a new mock bound to the test lifecycle.
func NewMockRateLimiter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRateLimiter {
	m := &MockRateLimiter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
