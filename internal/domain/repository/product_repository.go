// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product with its category joined.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves all products with their categories joined, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// RecomputeRating sets the product's derived rating to the rounded mean
	// of its reviews (0 when none remain) in a single UPDATE, so concurrent
	// review writers serialize on the product row.
	RecomputeRating(ctx context.Context, productID uuid.UUID) (int, error)
}
