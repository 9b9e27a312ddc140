package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"
)

// ErrPaymentNotFound is returned when a payment intent is not found.
var ErrPaymentNotFound = errors.New("payment intent not found")

// PaymentRepository defines the standard operations for payment intent persistence.
type PaymentRepository interface {
	// Create persists a new payment intent in the pending state.
	Create(ctx context.Context, intent *entity.PaymentIntent) error

	// FindByReference retrieves a payment intent by its unique reference.
	FindByReference(ctx context.Context, reference string) (*entity.PaymentIntent, error)

	// MarkTerminal transitions a pending intent to a terminal status.
	// Intents already terminal are left untouched.
	MarkTerminal(ctx context.Context, reference string, status entity.PaymentStatus, paidAt *time.Time) error
}
