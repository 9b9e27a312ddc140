// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a sellable item in the catalog.
// Rating is a derived field: the rounded average of the product's reviews,
// recomputed inside the same transaction as every review create/delete.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	// Price in minor currency units (kobo).
	Price      int64     `json:"price"`
	Rating     int       `json:"rating"`
	CategoryID uuid.UUID `json:"category_id"`
	Category   *Category `json:"category,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Category groups products for catalog listings.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}
