package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the explicit state of a payment intent. Modeled as a
// typed enum so a missing or unexpected gateway field can never satisfy a
// success check by accident.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "success"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// IsTerminal reports whether the status admits no further transitions.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSucceeded || s == PaymentStatusFailed
}

// StatusFromGateway maps a gateway transaction status string onto the enum.
// Only the literal "success" maps to PaymentStatusSucceeded; anything else,
// including an absent field, is a failure.
func StatusFromGateway(gatewayStatus string) PaymentStatus {
	if gatewayStatus == "success" {
		return PaymentStatusSucceeded
	}

	return PaymentStatusFailed
}

// PaymentIntent is one payment attempt, identified end-to-end by its
// reference (the idempotency key shared with the gateway). Terminal intents
// are immutable.
type PaymentIntent struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	Email     string    `json:"email"`
	// Amount in minor currency units (kobo).
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	Status           PaymentStatus `json:"status"`
	AuthorizationURL string        `json:"authorization_url,omitempty"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
