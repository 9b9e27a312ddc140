package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetTokenModel is the GORM-specific struct for the
// 'password_reset_tokens' table. Only the SHA-256 digest of a token is stored.
type PasswordResetTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenDigest string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt   time.Time `gorm:"not null"`
	UsedAt      *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
