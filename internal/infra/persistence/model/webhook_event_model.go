package model

import "time"

// WebhookEventModel is the GORM-specific struct for the 'webhook_events'
// table, recording processed gateway deliveries for replay idempotency.
type WebhookEventModel struct {
	EventID     string `gorm:"primary_key;size:128"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
