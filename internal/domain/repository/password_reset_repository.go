package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResetTokenNotFound is returned when no reset token matches a digest.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// PasswordResetRepository defines persistence for password reset tokens.
type PasswordResetRepository interface {
	// Create persists a new reset token record.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByDigest retrieves a token record by its SHA-256 digest.
	FindByDigest(ctx context.Context, digest string) (*entity.PasswordResetToken, error)

	// MarkUsed stamps the token as redeemed so it cannot be replayed.
	MarkUsed(ctx context.Context, id uuid.UUID) error

	// InvalidateForUser voids all outstanding tokens for a user.
	InvalidateForUser(ctx context.Context, userID uuid.UUID) error
}
