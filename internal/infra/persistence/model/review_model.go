package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The composite unique index enforces one review per (product, email).
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_email"`
	UserEmail    string    `gorm:"size:255;not null;uniqueIndex:idx_reviews_product_email"`
	UserName     string    `gorm:"size:120;not null"`
	Rating       int       `gorm:"not null"`
	Comment      string    `gorm:"type:text;not null"`
	Verified     bool      `gorm:"not null;default:false"`
	HelpfulCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
