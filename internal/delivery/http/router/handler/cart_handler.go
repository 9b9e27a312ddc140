// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PriceCartInput carries the cart lines to price.
type PriceCartInput struct {
	Lines []entity.CartLine `json:"lines" validate:"required,dive"`
}

// CartHandler holds dependencies for cart pricing handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// PriceCart handles the cart quote request. An empty cart prices to an
// all-zero quote rather than an error.
func (h *CartHandler) PriceCart(c echo.Context) error {
	var input *PriceCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	quote, err := h.uc.Quote(c.Request().Context(), input.Lines)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "Cart priced successfully")
}
