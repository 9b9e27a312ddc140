package service

import "context"

// PaymentEvent is the message published when a gateway webhook settles a
// charge. The worker applies the order side effects asynchronously.
type PaymentEvent struct {
	EventType string `json:"event_type"` // e.g. "charge.success"
	Reference string `json:"reference"`
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// EventPublisher publishes payment events for asynchronous processing.
type EventPublisher interface {
	// PublishPaymentEvent publishes an event. Implementations must be safe
	// for concurrent use.
	PublishPaymentEvent(ctx context.Context, event *PaymentEvent) error

	// Close releases publisher resources.
	Close() error
}
