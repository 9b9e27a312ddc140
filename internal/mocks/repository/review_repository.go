package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock for repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// MockReviewRepository_Expecter provides the fluent expectation API.
type MockReviewRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReviewRepository) EXPECT() *MockReviewRepository_Expecter {
	return &MockReviewRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	ret := _m.Called(ctx, review)

	return ret.Error(0)
}

func (_e *MockReviewRepository_Expecter) Create(ctx any, review any) *mock.Call {
	return _e.mock.On("Create", ctx, review)
}

func (_m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Review
	if v, ok := ret.Get(0).(*entity.Review); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockReviewRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	ret := _m.Called(ctx, productID)

	var r0 []*entity.Review
	if v, ok := ret.Get(0).([]*entity.Review); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockReviewRepository_Expecter) FindByProduct(ctx any, productID any) *mock.Call {
	return _e.mock.On("FindByProduct", ctx, productID)
}

func (_m *MockReviewRepository) ExistsByProductAndEmail(ctx context.Context, productID uuid.UUID, email string) (bool, error) {
	ret := _m.Called(ctx, productID, email)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockReviewRepository_Expecter) ExistsByProductAndEmail(ctx any, productID any, email any) *mock.Call {
	return _e.mock.On("ExistsByProductAndEmail", ctx, productID, email)
}

func (_m *MockReviewRepository) IncrementHelpful(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Review
	if v, ok := ret.Get(0).(*entity.Review); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockReviewRepository_Expecter) IncrementHelpful(ctx any, id any) *mock.Call {
	return _e.mock.On("IncrementHelpful", ctx, id)
}

func (_m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockReviewRepository_Expecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockReviewRepository creates a new mock bound to the test lifecycle.
func NewMockReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
