package entity

import "time"

// WebhookEvent records a gateway webhook that has already been processed,
// keyed by the gateway's event ID. Replayed deliveries are acknowledged
// without re-running their side effects.
type WebhookEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	ProcessedAt time.Time `json:"processed_at"`
	CreatedAt   time.Time `json:"created_at"`
}
