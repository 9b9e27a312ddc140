package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks an order through checkout and fulfilment.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// VerifiedPurchaseStatuses are the order statuses that mark a reviewer as a
// verified buyer of the product.
var VerifiedPurchaseStatuses = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusDelivered,
}

// Order is the record a payment reconciles against. It snapshots the priced
// cart at checkout time.
type Order struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	// Reference links the order to its payment intent.
	Reference string      `json:"reference"`
	Status    OrderStatus `json:"status"`
	// TotalAmount in minor currency units (kobo).
	TotalAmount int64       `json:"total_amount"`
	Lines       []OrderLine `json:"lines"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderLine snapshots one cart line at purchase time.
type OrderLine struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	VariantID string    `json:"variant_id,omitempty"`
	Title     string    `json:"title"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}
