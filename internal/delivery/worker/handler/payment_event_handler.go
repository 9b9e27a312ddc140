// Package handler processes pub/sub push deliveries for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PaymentEventHandler applies settled payment events to orders and sends
// the customer receipt mail.
type PaymentEventHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	orderRepo      repository.OrderRepository
	mailer         service.Mailer
}

// PaymentEventHandlerParams holds dependencies for the PaymentEventHandler
type PaymentEventHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	OrderRepo repository.OrderRepository
	Mailer    service.Mailer
}

// NewPaymentEventHandler creates a new Pub/Sub push handler
func NewPaymentEventHandler(params PaymentEventHandlerParams) *PaymentEventHandler {
	// Push auth only applies to real Google Pub/Sub outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PaymentEventHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		orderRepo:      params.OrderRepo,
		mailer:         params.Mailer,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PaymentEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PaymentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse payment event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing payment event",
		slog.String("event_type", event.EventType),
		slog.String("reference", event.Reference),
	)

	if err := h.processPaymentEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process payment event",
			slog.String("reference", event.Reference),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; 200 acknowledges events that
		// will never succeed so they do not retry forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Payment event processed successfully",
		slog.String("reference", event.Reference),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PaymentEventHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PaymentEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processPaymentEvent moves the order and sends the receipt for settled
// charges. Status updates are idempotent, so redeliveries are harmless.
func (h *PaymentEventHandler) processPaymentEvent(ctx context.Context, event *service.PaymentEvent) error {
	order, err := h.orderRepo.FindByReference(ctx, event.Reference)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return errors.Errorf("no order for reference %s", event.Reference)
	}
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	switch event.EventType {
	case "charge.success":
		if err := h.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing); err != nil {
			return newRetryableError(errors.WithStack(err))
		}

		h.sendReceipt(ctx, order, event)
	case "charge.failed":
		if err := h.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled); err != nil {
			return newRetryableError(errors.WithStack(err))
		}
	default:
		h.logger.Info("[Worker] Ignoring unhandled event type",
			slog.String("event_type", event.EventType),
		)
	}

	return nil
}

// sendReceipt mails the payment confirmation. Mail failures are logged, not
// retried; the order state change already stuck.
func (h *PaymentEventHandler) sendReceipt(ctx context.Context, order *entity.Order, event *service.PaymentEvent) {
	body := fmt.Sprintf(
		"Hello,\n\nYour payment of %d kobo for order %s was received. Your order is now being processed.\n\nReference: %s\n",
		event.Amount,
		order.ID.String(),
		event.Reference,
	)

	if err := h.mailer.Send(ctx, order.Email, "Payment received", body); err != nil {
		h.logger.Warn("[Worker] Failed to send receipt mail",
			slog.String("reference", event.Reference),
			slog.Any("error", err),
		)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
