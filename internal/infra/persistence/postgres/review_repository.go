package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new instance of reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewModel := fromReviewDomain(review)
	if err := r.db.WithContext(ctx).Create(reviewModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewModel.ID
	review.CreatedAt = reviewModel.CreatedAt

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewModel model.ReviewModel
	if err := r.db.WithContext(ctx).First(&reviewModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewModel), nil
}

func (r *reviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews for product")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewModel := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewModel))
	}

	return reviews, nil
}

func (r *reviewRepository) ExistsByProductAndEmail(ctx context.Context, productID uuid.UUID, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("product_id = ? AND user_email = ?", productID, email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check review existence")
	}

	return count > 0, nil
}

func (r *reviewRepository) IncrementHelpful(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewModel model.ReviewModel
	result := r.db.WithContext(ctx).
		Model(&reviewModel).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1"))
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to increment helpful count")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrReviewNotFound
	}

	return toReviewDomain(&reviewModel), nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// toReviewDomain converts a GORM model to a domain entity.
func toReviewDomain(reviewModel *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:           reviewModel.ID,
		ProductID:    reviewModel.ProductID,
		UserEmail:    reviewModel.UserEmail,
		UserName:     reviewModel.UserName,
		Rating:       reviewModel.Rating,
		Comment:      reviewModel.Comment,
		Verified:     reviewModel.Verified,
		HelpfulCount: reviewModel.HelpfulCount,
		CreatedAt:    reviewModel.CreatedAt,
	}
}

// fromReviewDomain converts a domain entity to a GORM model.
func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:           review.ID,
		ProductID:    review.ProductID,
		UserEmail:    review.UserEmail,
		UserName:     review.UserName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		Verified:     review.Verified,
		HelpfulCount: review.HelpfulCount,
	}
}
