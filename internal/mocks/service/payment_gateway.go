// Package service contains test doubles for the domain service interfaces.
package service

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPaymentGateway is a mock for service.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

// MockPaymentGateway_Expecter provides the fluent expectation API.
type MockPaymentGateway_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentGateway) EXPECT() *MockPaymentGateway_Expecter {
	return &MockPaymentGateway_Expecter{mock: &_m.Mock}
}

func (_m *MockPaymentGateway) Initialize(ctx context.Context, req *service.InitializeRequest) (*service.InitializeResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *service.InitializeResult
	if v, ok := ret.Get(0).(*service.InitializeResult); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockPaymentGateway_Expecter) Initialize(ctx any, req any) *mock.Call {
	return _e.mock.On("Initialize", ctx, req)
}

func (_m *MockPaymentGateway) Verify(ctx context.Context, reference string) (*service.VerifyResult, error) {
	ret := _m.Called(ctx, reference)

	var r0 *service.VerifyResult
	if v, ok := ret.Get(0).(*service.VerifyResult); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockPaymentGateway_Expecter) Verify(ctx any, reference any) *mock.Call {
	return _e.mock.On("Verify", ctx, reference)
}

// NewMockPaymentGateway creates a new mock bound to the test lifecycle.
func NewMockPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
