package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateReview is returned when the (product, email) pair already has a review.
	ErrDuplicateReview = errors.New("review already exists for this product and email")
)

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrDuplicateReview when the
	// unique (product_id, user_email) constraint is violated.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByProduct retrieves all reviews for a product, newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// ExistsByProductAndEmail reports whether the pair already has a review.
	ExistsByProductAndEmail(ctx context.Context, productID uuid.UUID, email string) (bool, error)

	// IncrementHelpful atomically bumps the helpful counter.
	IncrementHelpful(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error
}
