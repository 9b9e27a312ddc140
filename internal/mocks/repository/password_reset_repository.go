package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordResetRepository is a mock for repository.PasswordResetRepository.
type MockPasswordResetRepository struct {
	mock.Mock
}

// MockPasswordResetRepository_Expecter provides the fluent expectation API.
type MockPasswordResetRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordResetRepository) EXPECT() *MockPasswordResetRepository_Expecter {
	return &MockPasswordResetRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPasswordResetRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	ret := _m.Called(ctx, token)

	return ret.Error(0)
}

func (_e *MockPasswordResetRepository_Expecter) Create(ctx any, token any) *mock.Call {
	return _e.mock.On("Create", ctx, token)
}

func (_m *MockPasswordResetRepository) FindByDigest(ctx context.Context, digest string) (*entity.PasswordResetToken, error) {
	ret := _m.Called(ctx, digest)

	var r0 *entity.PasswordResetToken
	if v, ok := ret.Get(0).(*entity.PasswordResetToken); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockPasswordResetRepository_Expecter) FindByDigest(ctx any, digest any) *mock.Call {
	return _e.mock.On("FindByDigest", ctx, digest)
}

func (_m *MockPasswordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockPasswordResetRepository_Expecter) MarkUsed(ctx any, id any) *mock.Call {
	return _e.mock.On("MarkUsed", ctx, id)
}

func (_m *MockPasswordResetRepository) InvalidateForUser(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func (_e *MockPasswordResetRepository_Expecter) InvalidateForUser(ctx any, userID any) *mock.Call {
	return _e.mock.On("InvalidateForUser", ctx, userID)
}

// NewMockPasswordResetRepository creates a new mock bound to the test lifecycle.
func NewMockPasswordResetRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordResetRepository {
	m := &MockPasswordResetRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
