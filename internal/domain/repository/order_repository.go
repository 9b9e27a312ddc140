package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order with its lines.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its lines.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByReference retrieves the order linked to a payment reference.
	FindByReference(ctx context.Context, reference string) (*entity.Order, error)

	// UpdateStatus moves an order to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// HasPurchase reports whether the email has an order containing the
	// product in any of the given statuses. Used for review verification.
	HasPurchase(ctx context.Context, email string, productID uuid.UUID, statuses []entity.OrderStatus) (bool, error)
}
