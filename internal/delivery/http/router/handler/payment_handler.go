package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderPaystackSignature carries the HMAC-SHA512 digest of the webhook body.
const HeaderPaystackSignature = "x-paystack-signature"

// VerifyPaymentInput carries the reference to verify.
type VerifyPaymentInput struct {
	Reference string `json:"reference" validate:"required"`
}

// PaymentHandler holds dependencies for payment lifecycle handlers.
type PaymentHandler struct {
	uc       usecase.PaymentUsecase
	verifier service.SignatureVerifier
	logger   *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, verifier service.SignatureVerifier, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:       uc,
		verifier: verifier,
		logger:   logger,
	}
}

// Initialize handles the checkout initialization request.
func (h *PaymentHandler) Initialize(c echo.Context) error {
	var input *usecase.InitializePaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.InitializePayment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment initialized successfully")
}

// Verify handles the payment verification request. The reference arrives in
// the query string on GET and in the JSON body on POST.
func (h *PaymentHandler) Verify(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" && c.Request().Method == http.MethodPost {
		var input VerifyPaymentInput
		if err := c.Bind(&input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid verify input")
		}
		reference = input.Reference
	}
	if reference == "" {
		return response.BadRequest(c, "INVALID_INPUT", "reference is required")
	}

	output, err := h.uc.VerifyPayment(c.Request().Context(), reference)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment verified")
}

// Webhook handles gateway webhook deliveries. The signature is checked
// against the raw body before any JSON parsing happens.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook body")
	}

	signature := c.Request().Header.Get(HeaderPaystackSignature)
	if !h.verifier.Verify(body, signature) {
		h.logger.Warn("Webhook signature mismatch",
			slog.String("remote_ip", c.RealIP()),
		)

		return errors.WithStack(domainerrors.ErrInvalidWebhookSignature)
	}

	var event service.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid webhook payload")
	}
	event.Raw = body

	if err := h.uc.HandleWebhookEvent(c.Request().Context(), &event); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Webhook received")
}

// QRCode renders the payment's authorization URL as a PNG QR code.
func (h *PaymentHandler) QRCode(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return response.BadRequest(c, "INVALID_INPUT", "reference is required")
	}

	png, err := h.uc.GetPaymentQR(c.Request().Context(), reference)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
