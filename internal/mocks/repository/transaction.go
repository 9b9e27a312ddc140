package repository

import (
	"context"

	"storefront/internal/domain/repository"
)

// StubRepositoryFactory hands out the configured repositories, standing in
// for a transaction-bound factory in tests.
type StubRepositoryFactory struct {
	ProductRepo      repository.ProductRepository
	ReviewRepo       repository.ReviewRepository
	OrderRepo        repository.OrderRepository
	PaymentRepo      repository.PaymentRepository
	WebhookEventRepo repository.WebhookEventRepository
}

func (f *StubRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.ProductRepo
}

func (f *StubRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return f.ReviewRepo
}

func (f *StubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}

func (f *StubRepositoryFactory) NewPaymentRepository() repository.PaymentRepository {
	return f.PaymentRepo
}

func (f *StubRepositoryFactory) NewWebhookEventRepository() repository.WebhookEventRepository {
	return f.WebhookEventRepo
}

// StubTransactionManager runs the callback directly against the stub
// factory, without any real transaction.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory

	// BeginErr, when set, is returned without running the callback.
	BeginErr error
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}

	return fn(m.Factory)
}
