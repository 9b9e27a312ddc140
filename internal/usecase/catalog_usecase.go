package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries a new catalog entry.
type CreateProductInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Price       int64     `json:"price" validate:"required,min=1"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
}

// CatalogUsecase defines the interface for catalog use cases
type CatalogUsecase interface {
	// GetProduct retrieves a single product, cache first.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves the full catalog, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// CreateProduct adds a product to the catalog. Admin only.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
}
