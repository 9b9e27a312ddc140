package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput carries a new review submission.
type CreateReviewInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	UserEmail string    `json:"user_email" validate:"required,email"`
	UserName  string    `json:"user_name" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"required"`
}

// ReviewSummary pairs a product's reviews with its derived rating.
type ReviewSummary struct {
	ProductRating int              `json:"product_rating"`
	Reviews       []*entity.Review `json:"reviews"`
}

// ReviewUsecase defines the interface for review management use cases
type ReviewUsecase interface {
	// CreateReview validates and persists a review, recomputing the
	// product's rating in the same transaction.
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)

	// ListReviews returns a product's reviews with its current rating.
	ListReviews(ctx context.Context, productID uuid.UUID) (*ReviewSummary, error)

	// MarkHelpful bumps a review's helpful counter.
	MarkHelpful(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)

	// DeleteReview removes a review and recomputes the product's rating in
	// the same transaction. Restricted to admins at the delivery layer.
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
}
