package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, intent *entity.PaymentIntent) error {
	intentModel := fromPaymentIntentDomain(intent)
	if err := r.db.WithContext(ctx).Create(intentModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "payment reference already exists")
		}

		return errors.Wrap(err, "failed to create payment intent")
	}

	intent.ID = intentModel.ID
	intent.CreatedAt = intentModel.CreatedAt
	intent.UpdatedAt = intentModel.UpdatedAt

	return nil
}

func (r *paymentRepository) FindByReference(ctx context.Context, reference string) (*entity.PaymentIntent, error) {
	var intentModel model.PaymentIntentModel
	if err := r.db.WithContext(ctx).
		First(&intentModel, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment intent by reference")
	}

	return toPaymentIntentDomain(&intentModel), nil
}

// MarkTerminal transitions a pending intent to a terminal status. The status
// guard in the WHERE clause keeps terminal intents immutable, so a replayed
// webhook or a verify racing a webhook is a no-op on the second write.
func (r *paymentRepository) MarkTerminal(ctx context.Context, reference string, status entity.PaymentStatus, paidAt *time.Time) error {
	if !status.IsTerminal() {
		return errors.New("MarkTerminal requires a terminal status")
	}

	updates := map[string]any{
		"status":  string(status),
		"paid_at": paidAt,
	}
	result := r.db.WithContext(ctx).
		Model(&model.PaymentIntentModel{}).
		Where("reference = ? AND status = ?", reference, string(entity.PaymentStatusPending)).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark payment intent terminal")
	}
	if result.RowsAffected == 0 {
		// Either the reference is unknown or the intent is already terminal.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.PaymentIntentModel{}).
			Where("reference = ?", reference).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check payment intent existence")
		}
		if count == 0 {
			return repository.ErrPaymentNotFound
		}
	}

	return nil
}

// toPaymentIntentDomain converts a GORM model to a domain entity.
func toPaymentIntentDomain(intentModel *model.PaymentIntentModel) *entity.PaymentIntent {
	return &entity.PaymentIntent{
		ID:               intentModel.ID,
		Reference:        intentModel.Reference,
		Email:            intentModel.Email,
		Amount:           intentModel.Amount,
		Currency:         intentModel.Currency,
		Status:           entity.PaymentStatus(intentModel.Status),
		AuthorizationURL: intentModel.AuthorizationURL,
		PaidAt:           intentModel.PaidAt,
		CreatedAt:        intentModel.CreatedAt,
		UpdatedAt:        intentModel.UpdatedAt,
	}
}

// fromPaymentIntentDomain converts a domain entity to a GORM model.
func fromPaymentIntentDomain(intent *entity.PaymentIntent) *model.PaymentIntentModel {
	return &model.PaymentIntentModel{
		ID:               intent.ID,
		Reference:        intent.Reference,
		Email:            intent.Email,
		Amount:           intent.Amount,
		Currency:         intent.Currency,
		Status:           string(intent.Status),
		AuthorizationURL: intent.AuthorizationURL,
		PaidAt:           intent.PaidAt,
	}
}
