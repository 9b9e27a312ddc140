package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string    `gorm:"size:255;not null;index"`
	Reference   string    `gorm:"size:100;not null;uniqueIndex"`
	Status      string    `gorm:"size:32;not null;index"`
	TotalAmount int64     `gorm:"not null"`
	Lines       []*OrderLineModel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_lines' table.
// Each line snapshots the product at purchase time.
type OrderLineModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	VariantID string    `gorm:"size:100"`
	Title     string    `gorm:"size:255;not null"`
	UnitPrice int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
