// Package model contains the GORM-specific structs for the postgres schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Rating is derived from reviews and maintained by RecomputeRating.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	Rating      int       `gorm:"not null;default:0"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Category    *CategoryModel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"size:120;not null"`
	Slug string    `gorm:"size:120;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
