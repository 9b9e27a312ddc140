package usecase

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// InitializePaymentInput carries the checkout payload for a new payment.
// Amount is in major currency units, converted to minor units internally.
type InitializePaymentInput struct {
	Email       string  `json:"email" validate:"required,email"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	Reference   string  `json:"reference"`
	CallbackURL string  `json:"callback_url" validate:"omitempty,url"`
}

// InitializePaymentOutput is the result of a gateway initialization.
// Gateway carries the gateway's data payload verbatim next to the lifted
// fields, so clients see exactly what the gateway answered.
type InitializePaymentOutput struct {
	Reference        string          `json:"reference"`
	AuthorizationURL string          `json:"authorization_url"`
	AccessCode       string          `json:"access_code"`
	Amount           int64           `json:"amount"`
	Gateway          json.RawMessage `json:"gateway,omitempty"`
}

// VerifyPaymentOutput reports the settled state of a payment reference.
type VerifyPaymentOutput struct {
	Reference string               `json:"reference"`
	Status    entity.PaymentStatus `json:"status"`
	Amount    int64                `json:"amount"`
	Currency  string               `json:"currency"`
	PaidAt    string               `json:"paid_at,omitempty"`
}

// PaymentUsecase defines the interface for the payment lifecycle use cases
type PaymentUsecase interface {
	// InitializePayment creates a pending intent under a unique reference
	// and obtains the gateway authorization URL. The reference doubles as
	// the idempotency key linking the intent to its order.
	InitializePayment(ctx context.Context, input *InitializePaymentInput) (*InitializePaymentOutput, error)

	// VerifyPayment re-checks a reference against the gateway and settles
	// the local intent. Safe to call any number of times.
	VerifyPayment(ctx context.Context, reference string) (*VerifyPaymentOutput, error)

	// HandleWebhookEvent applies a signature-verified webhook delivery.
	// Replayed event IDs are acknowledged without side effects.
	HandleWebhookEvent(ctx context.Context, event *service.WebhookEvent) error

	// GetPaymentQR renders the intent's authorization URL as a PNG QR code.
	GetPaymentQR(ctx context.Context, reference string) ([]byte, error)
}
