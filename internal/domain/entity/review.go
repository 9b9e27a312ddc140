package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinCommentLength is the shortest accepted review comment.
const MinCommentLength = 10

// Review is a user-submitted product review. At most one review exists per
// (product, email) pair; the database enforces this with a unique index.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserEmail string    `json:"user_email"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	// Verified is true when the reviewer's email has an order containing
	// this product in a processing/completed/delivered state.
	Verified     bool      `json:"verified"`
	HelpfulCount int       `json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
}
