// Package repository contains test doubles for the repository interfaces.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock for repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// MockProductRepository_Expecter provides the fluent expectation API.
type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Product
	if v, ok := ret.Get(0).(*entity.Product); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Product
	if v, ok := ret.Get(0).([]*entity.Product); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Create(ctx any, product any) *mock.Call {
	return _e.mock.On("Create", ctx, product)
}

func (_m *MockProductRepository) RecomputeRating(ctx context.Context, productID uuid.UUID) (int, error) {
	ret := _m.Called(ctx, productID)

	return ret.Int(0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) RecomputeRating(ctx any, productID any) *mock.Call {
	return _e.mock.On("RecomputeRating", ctx, productID)
}

// NewMockProductRepository creates a new mock bound to the test lifecycle.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
