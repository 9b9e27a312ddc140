package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceMocks struct {
	productRepo *mockRepo.MockProductRepository
	reviewRepo  *mockRepo.MockReviewRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func newReviewService(t *testing.T) (usecase.ReviewUsecase, *reviewServiceMocks) {
	t.Helper()

	m := &reviewServiceMocks{
		productRepo: mockRepo.NewMockProductRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
	}

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			ProductRepo: m.productRepo,
			ReviewRepo:  m.reviewRepo,
			OrderRepo:   m.orderRepo,
		},
	}

	svc := NewReviewService(ReviewServiceParams{
		TxManager:   txManager,
		ProductRepo: m.productRepo,
		ReviewRepo:  m.reviewRepo,
		OrderRepo:   m.orderRepo,
		Logger:      slog.Default(),
	})

	return svc, m
}

func validReviewInput(productID uuid.UUID) *usecase.CreateReviewInput {
	return &usecase.CreateReviewInput{
		ProductID: productID,
		UserEmail: "buyer@example.com",
		UserName:  "Ada",
		Rating:    4,
		Comment:   "Great quality, arrived quickly.",
	}
}

func TestReviewService_CreateReview_VerifiedBuyer(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	m.orderRepo.EXPECT().
		HasPurchase(ctx, "buyer@example.com", productID, entity.VerifiedPurchaseStatuses).
		Return(true, nil)

	m.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	m.productRepo.EXPECT().
		RecomputeRating(ctx, productID).
		Return(4, nil)

	review, err := svc.CreateReview(ctx, validReviewInput(productID))
	require.NoError(t, err)

	assert.True(t, review.Verified)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_CreateReview_UnverifiedBuyer(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	m.orderRepo.EXPECT().
		HasPurchase(ctx, "buyer@example.com", productID, entity.VerifiedPurchaseStatuses).
		Return(false, nil)

	m.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	m.productRepo.EXPECT().
		RecomputeRating(ctx, productID).
		Return(4, nil)

	review, err := svc.CreateReview(ctx, validReviewInput(productID))
	require.NoError(t, err)
	assert.False(t, review.Verified)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	m.orderRepo.EXPECT().
		HasPurchase(ctx, "buyer@example.com", productID, entity.VerifiedPurchaseStatuses).
		Return(true, nil)

	m.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(repository.ErrDuplicateReview)

	_, err := svc.CreateReview(ctx, validReviewInput(productID))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_CreateReview_CommentTooShort(t *testing.T) {
	svc, _ := newReviewService(t)

	input := validReviewInput(uuid.New())
	input.Comment = "too short"

	_, err := svc.CreateReview(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	svc, _ := newReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		input := validReviewInput(uuid.New())
		input.Rating = rating

		_, err := svc.CreateReview(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestReviewService_CreateReview_ProductMissing(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := svc.CreateReview(ctx, validReviewInput(productID))
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_ListReviews(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	m.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Rating: 4}, nil)

	m.reviewRepo.EXPECT().
		FindByProduct(ctx, productID).
		Return([]*entity.Review{
			{ProductID: productID, Rating: 5},
			{ProductID: productID, Rating: 3},
		}, nil)

	summary, err := svc.ListReviews(ctx, productID)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.ProductRating)
	assert.Len(t, summary.Reviews, 2)
}

func TestReviewService_MarkHelpful(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	reviewID := uuid.New()

	m.reviewRepo.EXPECT().
		IncrementHelpful(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, HelpfulCount: 3}, nil)

	review, err := svc.MarkHelpful(ctx, reviewID)
	require.NoError(t, err)
	assert.Equal(t, 3, review.HelpfulCount)
}

func TestReviewService_MarkHelpful_NotFound(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	reviewID := uuid.New()

	m.reviewRepo.EXPECT().
		IncrementHelpful(ctx, reviewID).
		Return(nil, repository.ErrReviewNotFound)

	_, err := svc.MarkHelpful(ctx, reviewID)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_DeleteReview_RecomputesRating(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	reviewID := uuid.New()
	productID := uuid.New()

	m.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, ProductID: productID}, nil)

	m.reviewRepo.EXPECT().
		Delete(ctx, reviewID).
		Return(nil)

	// Deleting the last review takes the derived rating back to zero.
	m.productRepo.EXPECT().
		RecomputeRating(ctx, productID).
		Return(0, nil)

	err := svc.DeleteReview(ctx, reviewID)
	require.NoError(t, err)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	svc, m := newReviewService(t)
	ctx := context.Background()
	reviewID := uuid.New()

	m.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(nil, repository.ErrReviewNotFound)

	err := svc.DeleteReview(ctx, reviewID)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}
