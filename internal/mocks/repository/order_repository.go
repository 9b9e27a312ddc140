package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock for repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// MockOrderRepository_Expecter provides the fluent expectation API.
type MockOrderRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderRepository) EXPECT() *MockOrderRepository_Expecter {
	return &MockOrderRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_e *MockOrderRepository_Expecter) Create(ctx any, order any) *mock.Call {
	return _e.mock.On("Create", ctx, order)
}

func (_m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Order
	if v, ok := ret.Get(0).(*entity.Order); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockOrderRepository) FindByReference(ctx context.Context, reference string) (*entity.Order, error) {
	ret := _m.Called(ctx, reference)

	var r0 *entity.Order
	if v, ok := ret.Get(0).(*entity.Order); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) FindByReference(ctx any, reference any) *mock.Call {
	return _e.mock.On("FindByReference", ctx, reference)
}

func (_m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	ret := _m.Called(ctx, id, status)

	return ret.Error(0)
}

func (_e *MockOrderRepository_Expecter) UpdateStatus(ctx any, id any, status any) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, id, status)
}

func (_m *MockOrderRepository) HasPurchase(ctx context.Context, email string, productID uuid.UUID, statuses []entity.OrderStatus) (bool, error) {
	ret := _m.Called(ctx, email, productID, statuses)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) HasPurchase(ctx any, email any, productID any, statuses any) *mock.Call {
	return _e.mock.On("HasPurchase", ctx, email, productID, statuses)
}

// NewMockOrderRepository creates a new mock bound to the test lifecycle.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
