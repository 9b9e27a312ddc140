package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockWebhookEventRepository is a mock for repository.WebhookEventRepository.
type MockWebhookEventRepository struct {
	mock.Mock
}

// MockWebhookEventRepository_Expecter provides the fluent expectation API.
type MockWebhookEventRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWebhookEventRepository) EXPECT() *MockWebhookEventRepository_Expecter {
	return &MockWebhookEventRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockWebhookEventRepository) MarkProcessed(ctx context.Context, event *entity.WebhookEvent) (bool, error) {
	ret := _m.Called(ctx, event)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockWebhookEventRepository_Expecter) MarkProcessed(ctx any, event any) *mock.Call {
	return _e.mock.On("MarkProcessed", ctx, event)
}

// NewMockWebhookEventRepository creates a new mock bound to the test lifecycle.
func NewMockWebhookEventRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWebhookEventRepository {
	m := &MockWebhookEventRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
