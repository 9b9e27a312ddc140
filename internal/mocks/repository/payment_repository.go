package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock for repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

// MockPaymentRepository_Expecter provides the fluent expectation API.
type MockPaymentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentRepository) EXPECT() *MockPaymentRepository_Expecter {
	return &MockPaymentRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPaymentRepository) Create(ctx context.Context, intent *entity.PaymentIntent) error {
	ret := _m.Called(ctx, intent)

	return ret.Error(0)
}

func (_e *MockPaymentRepository_Expecter) Create(ctx any, intent any) *mock.Call {
	return _e.mock.On("Create", ctx, intent)
}

func (_m *MockPaymentRepository) FindByReference(ctx context.Context, reference string) (*entity.PaymentIntent, error) {
	ret := _m.Called(ctx, reference)

	var r0 *entity.PaymentIntent
	if v, ok := ret.Get(0).(*entity.PaymentIntent); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockPaymentRepository_Expecter) FindByReference(ctx any, reference any) *mock.Call {
	return _e.mock.On("FindByReference", ctx, reference)
}

func (_m *MockPaymentRepository) MarkTerminal(ctx context.Context, reference string, status entity.PaymentStatus, paidAt *time.Time) error {
	ret := _m.Called(ctx, reference, status, paidAt)

	return ret.Error(0)
}

func (_e *MockPaymentRepository_Expecter) MarkTerminal(ctx any, reference any, status any, paidAt any) *mock.Call {
	return _e.mock.On("MarkTerminal", ctx, reference, status, paidAt)
}

// NewMockPaymentRepository creates a new mock bound to the test lifecycle.
func NewMockPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
