package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new instance of webhookEventRepository.
func NewWebhookEventRepository(db *gorm.DB) repository.WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

// MarkProcessed inserts the event ID with ON CONFLICT DO NOTHING. Zero rows
// affected means an earlier delivery already claimed the ID, so the caller
// must skip the event's side effects.
func (r *webhookEventRepository) MarkProcessed(ctx context.Context, event *entity.WebhookEvent) (bool, error) {
	eventModel := &model.WebhookEventModel{
		EventID:     event.EventID,
		EventType:   event.EventType,
		ProcessedAt: time.Now(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(eventModel)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to record webhook event")
	}

	alreadyProcessed := result.RowsAffected == 0
	if !alreadyProcessed {
		event.ProcessedAt = eventModel.ProcessedAt
		event.CreatedAt = eventModel.CreatedAt
	}

	return alreadyProcessed, nil
}
