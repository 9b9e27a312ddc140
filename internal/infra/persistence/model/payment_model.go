package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentIntentModel is the GORM-specific struct for the 'payment_intents' table.
type PaymentIntentModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Reference        string    `gorm:"size:100;not null;uniqueIndex"`
	Email            string    `gorm:"size:255;not null;index"`
	Amount           int64     `gorm:"not null"`
	Currency         string    `gorm:"size:8;not null;default:'NGN'"`
	Status           string    `gorm:"size:16;not null;index"`
	AuthorizationURL string    `gorm:"size:500"`
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentIntentModel) TableName() string {
	return "payment_intents"
}
