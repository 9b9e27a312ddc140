package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*PaymentEventHandler, *mockRepo.MockOrderRepository, *mockSvc.MockMailer) {
	t.Helper()

	orderRepo := mockRepo.NewMockOrderRepository(t)
	mailer := mockSvc.NewMockMailer(t)

	h := NewPaymentEventHandler(PaymentEventHandlerParams{
		Config:    &config.Config{},
		Logger:    slog.Default(),
		OrderRepo: orderRepo,
		Mailer:    mailer,
	})

	return h, orderRepo, mailer
}

func pushRequest(t *testing.T, event *service.PaymentEvent) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	body := fmt.Sprintf(`{"message":{"data":%q,"messageId":"m1"},"subscription":"projects/local/subscriptions/payment-sub"}`,
		base64.StdEncoding.EncodeToString(data))

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPaymentEventHandler_ChargeSuccess(t *testing.T) {
	h, orderRepo, mailer := newTestHandler(t)
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByReference(mock.Anything, "store_ref").
		Return(&entity.Order{ID: orderID, Email: "buyer@example.com", Reference: "store_ref"}, nil)

	orderRepo.EXPECT().
		UpdateStatus(mock.Anything, orderID, entity.OrderStatusProcessing).
		Return(nil)

	mailer.EXPECT().
		Send(mock.Anything, "buyer@example.com", "Payment received", mock.AnythingOfType("string")).
		Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.PaymentEvent{
		EventType: "charge.success",
		Reference: "store_ref",
		Amount:    50375,
		Currency:  "NGN",
	}), rec)

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentEventHandler_ChargeFailed(t *testing.T) {
	h, orderRepo, _ := newTestHandler(t)
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByReference(mock.Anything, "store_ref").
		Return(&entity.Order{ID: orderID, Email: "buyer@example.com", Reference: "store_ref"}, nil)

	orderRepo.EXPECT().
		UpdateStatus(mock.Anything, orderID, entity.OrderStatusCancelled).
		Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.PaymentEvent{
		EventType: "charge.failed",
		Reference: "store_ref",
	}), rec)

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentEventHandler_UnknownOrderAcknowledged(t *testing.T) {
	h, orderRepo, _ := newTestHandler(t)

	orderRepo.EXPECT().
		FindByReference(mock.Anything, "store_ghost").
		Return(nil, repository.ErrOrderNotFound)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.PaymentEvent{
		EventType: "charge.success",
		Reference: "store_ghost",
	}), rec)

	// A reference that will never match an order must not retry forever.
	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentEventHandler_RepositoryOutageRetries(t *testing.T) {
	h, orderRepo, _ := newTestHandler(t)

	orderRepo.EXPECT().
		FindByReference(mock.Anything, "store_ref").
		Return(nil, fmt.Errorf("connection refused"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.PaymentEvent{
		EventType: "charge.success",
		Reference: "store_ref",
	}), rec)

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPaymentEventHandler_MalformedBody(t *testing.T) {
	h, _, _ := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"not-base64!!"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
