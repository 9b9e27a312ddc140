package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/paystack"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPaymentUsecase records webhook deliveries for assertions.
type stubPaymentUsecase struct {
	handled []*service.WebhookEvent
}

func (s *stubPaymentUsecase) InitializePayment(ctx context.Context, input *usecase.InitializePaymentInput) (*usecase.InitializePaymentOutput, error) {
	return nil, nil
}

func (s *stubPaymentUsecase) VerifyPayment(ctx context.Context, reference string) (*usecase.VerifyPaymentOutput, error) {
	return nil, nil
}

func (s *stubPaymentUsecase) HandleWebhookEvent(ctx context.Context, event *service.WebhookEvent) error {
	s.handled = append(s.handled, event)

	return nil
}

func (s *stubPaymentUsecase) GetPaymentQR(ctx context.Context, reference string) ([]byte, error) {
	return nil, nil
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func newWebhookTestHandler(secret string) (*PaymentHandler, *stubPaymentUsecase) {
	cfg := &config.Config{
		Paystack: &config.PaystackConfig{SecretKey: secret},
	}

	uc := &stubPaymentUsecase{}
	h := NewPaymentHandler(uc, paystack.NewSignatureVerifier(cfg), slog.Default())

	return h, uc
}

func TestPaymentHandler_Webhook_ValidSignature(t *testing.T) {
	h, uc := newWebhookTestHandler("sk_test_secret")

	body := `{"event":"charge.success","data":{"id":302961,"reference":"store_ref","status":"success","amount":50375,"currency":"NGN"}}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/paystack/webhook", strings.NewReader(body))
	req.Header.Set(HeaderPaystackSignature, signBody("sk_test_secret", []byte(body)))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Webhook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	require.Len(t, uc.handled, 1)
	assert.Equal(t, "charge.success", uc.handled[0].Event)
	assert.Equal(t, "store_ref", uc.handled[0].Data.Reference)
	assert.Equal(t, []byte(body), []byte(uc.handled[0].Raw))
}

func TestPaymentHandler_Webhook_BadSignature(t *testing.T) {
	h, uc := newWebhookTestHandler("sk_test_secret")

	body := `{"event":"charge.success","data":{"reference":"store_ref"}}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/paystack/webhook", strings.NewReader(body))
	req.Header.Set(HeaderPaystackSignature, signBody("wrong_secret", []byte(body)))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Webhook(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWebhookSignature)
	assert.Empty(t, uc.handled)
}

func TestPaymentHandler_Webhook_MissingSignature(t *testing.T) {
	h, uc := newWebhookTestHandler("sk_test_secret")

	body := `{"event":"charge.success","data":{"reference":"store_ref"}}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/paystack/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Webhook(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWebhookSignature)
	assert.Empty(t, uc.handled)
}
