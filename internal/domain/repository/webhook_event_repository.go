package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// WebhookEventRepository records processed gateway webhook deliveries for
// replay idempotency.
type WebhookEventRepository interface {
	// MarkProcessed records an event ID. Returns alreadyProcessed=true when
	// the ID was recorded before, in which case no new row is written.
	MarkProcessed(ctx context.Context, event *entity.WebhookEvent) (alreadyProcessed bool, err error)
}
