// Package service defines the interfaces for domain services implemented by the infrastructure layer.
package service

import (
	"context"
	"encoding/json"
)

// InitializeRequest is the payload forwarded to the gateway's transaction
// initialize endpoint. Amount is in minor currency units.
type InitializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency,omitempty"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
}

// InitializeResult carries the gateway's initialize response verbatim,
// with the fields the storefront needs to act on lifted out.
type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
	// Raw is the gateway's data payload, returned to the caller unchanged.
	Raw json.RawMessage `json:"-"`
}

// VerifyResult carries the gateway's verify response. Status is the literal
// gateway transaction status string; callers must map it through
// entity.StatusFromGateway rather than truth-testing it.
type VerifyResult struct {
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	PaidAt   string `json:"paid_at"`
	// Raw is the gateway's data payload, returned to the caller unchanged.
	Raw json.RawMessage `json:"-"`
}

// PaymentGateway abstracts the hosted payment provider (Paystack).
// Implementations surface upstream failures as *domainerrors.GatewayError so
// handlers can mirror the gateway's HTTP status and body.
type PaymentGateway interface {
	// Initialize creates a payment authorization with the gateway.
	Initialize(ctx context.Context, req *InitializeRequest) (*InitializeResult, error)

	// Verify fetches the gateway's view of a transaction by reference.
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

// WebhookEvent is the decoded body of a gateway webhook delivery.
type WebhookEvent struct {
	Event string          `json:"event"`
	Data  WebhookData     `json:"data"`
	Raw   json.RawMessage `json:"-"`
}

// WebhookData is the subset of the webhook payload the storefront acts on.
type WebhookData struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
	Customer  struct {
		Email string `json:"email"`
	} `json:"customer"`
}

// SignatureVerifier authenticates a raw webhook body against the signature
// header before any JSON parsing happens.
type SignatureVerifier interface {
	// Verify recomputes the body's HMAC-SHA512 digest with the shared secret
	// and constant-time-compares it to the provided hex signature.
	Verify(body []byte, signature string) bool
}
