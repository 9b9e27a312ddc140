package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// MockUserRepository_Expecter provides the fluent expectation API.
type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if v, ok := ret.Get(0).(*entity.User); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *entity.User
	if v, ok := ret.Get(0).(*entity.User); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByEmail(ctx any, email any) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_e *MockUserRepository_Expecter) Create(ctx any, user any) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	ret := _m.Called(ctx, id, passwordHash)

	return ret.Error(0)
}

func (_e *MockUserRepository_Expecter) UpdatePassword(ctx any, id any, passwordHash any) *mock.Call {
	return _e.mock.On("UpdatePassword", ctx, id, passwordHash)
}

// NewMockUserRepository creates a new mock bound to the test lifecycle.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
