package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new instance of passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenModel := fromResetTokenDomain(token)
	if err := r.db.WithContext(ctx).Create(tokenModel).Error; err != nil {
		return errors.Wrap(err, "failed to create password reset token")
	}

	token.ID = tokenModel.ID
	token.CreatedAt = tokenModel.CreatedAt

	return nil
}

func (r *passwordResetRepository) FindByDigest(ctx context.Context, digest string) (*entity.PasswordResetToken, error) {
	var tokenModel model.PasswordResetTokenModel
	if err := r.db.WithContext(ctx).
		First(&tokenModel, "token_digest = ?", digest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token")
	}

	return toResetTokenDomain(&tokenModel), nil
}

func (r *passwordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark password reset token used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

func (r *passwordResetRepository) InvalidateForUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("user_id = ? AND used_at IS NULL", userID).
		Update("used_at", time.Now()).Error; err != nil {
		return errors.Wrap(err, "failed to invalidate password reset tokens")
	}

	return nil
}

// toResetTokenDomain converts a GORM model to a domain entity.
func toResetTokenDomain(tokenModel *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		ID:          tokenModel.ID,
		UserID:      tokenModel.UserID,
		TokenDigest: tokenModel.TokenDigest,
		ExpiresAt:   tokenModel.ExpiresAt,
		UsedAt:      tokenModel.UsedAt,
		CreatedAt:   tokenModel.CreatedAt,
	}
}

// fromResetTokenDomain converts a domain entity to a GORM model.
func fromResetTokenDomain(token *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	return &model.PasswordResetTokenModel{
		ID:          token.ID,
		UserID:      token.UserID,
		TokenDigest: token.TokenDigest,
		ExpiresAt:   token.ExpiresAt,
		UsedAt:      token.UsedAt,
	}
}
