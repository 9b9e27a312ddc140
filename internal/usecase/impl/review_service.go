package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/cache"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	orderRepo    repository.OrderRepository
	productCache *cache.ProductCache
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	ReviewRepo   repository.ReviewRepository
	OrderRepo    repository.OrderRepository
	ProductCache *cache.ProductCache
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		reviewRepo:   params.ReviewRepo,
		orderRepo:    params.OrderRepo,
		productCache: params.ProductCache,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview validates and persists a review. The write and the product
// rating recompute run in one transaction, so readers never observe a rating
// that disagrees with the stored reviews.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}
	if len(strings.TrimSpace(input.Comment)) < entity.MinCommentLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment is too short")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for review")
	}

	verified, err := srv.orderRepo.HasPurchase(ctx, input.UserEmail, input.ProductID, entity.VerifiedPurchaseStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check purchase history")
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		UserEmail: input.UserEmail,
		UserName:  input.UserName,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		Verified:  verified,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewReviewRepository().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview
			}

			return errors.Wrap(err, "failed to create review")
		}

		rating, err := repoFactory.NewProductRepository().RecomputeRating(ctx, input.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to recompute product rating")
		}

		srv.log(ctx).Debug("Recomputed product rating",
			slog.String("productID", input.ProductID.String()),
			slog.Int("rating", rating),
		)

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateReview) {
			return nil, domainerrors.ErrDuplicateReview
		}

		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	srv.invalidateProduct(ctx, input.ProductID)

	return review, nil
}

// ListReviews returns a product's reviews together with its derived rating.
func (srv *reviewService) ListReviews(ctx context.Context, productID uuid.UUID) (*usecase.ReviewSummary, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewSummary{
		ProductRating: product.Rating,
		Reviews:       reviews,
	}, nil
}

// MarkHelpful bumps a review's helpful counter.
func (srv *reviewService) MarkHelpful(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.IncrementHelpful(ctx, reviewID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to increment helpful count")
	}

	return review, nil
}

// DeleteReview removes a review and recomputes the product rating in the
// same transaction. Deleting the last review takes the rating back to zero.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find review")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewReviewRepository().Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		if _, err := repoFactory.NewProductRepository().RecomputeRating(ctx, review.ProductID); err != nil {
			return errors.Wrap(err, "failed to recompute product rating")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute review deletion transaction")
	}

	srv.invalidateProduct(ctx, review.ProductID)

	return nil
}

// invalidateProduct drops the cached product after its rating changed. Cache
// failures are logged, never surfaced.
func (srv *reviewService) invalidateProduct(ctx context.Context, productID uuid.UUID) {
	if srv.productCache == nil {
		return
	}

	if err := srv.productCache.Delete(ctx, productID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate product cache",
			slog.String("productID", productID.String()),
			slog.Any("error", err),
		)
	}
}
