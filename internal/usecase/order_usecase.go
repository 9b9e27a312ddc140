package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateOrderInput carries a checkout cart for order creation.
type CreateOrderInput struct {
	Email string            `json:"email" validate:"required,email"`
	Lines []entity.CartLine `json:"lines" validate:"required,min=1,dive"`
}

// OrderUsecase defines the interface for order use cases
type OrderUsecase interface {
	// CreateOrder prices the cart and persists a pending order snapshot.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order by its payment reference.
	GetOrder(ctx context.Context, reference string) (*entity.Order, error)
}
