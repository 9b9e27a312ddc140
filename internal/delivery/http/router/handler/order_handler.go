package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the checkout order creation request.
func (h *OrderHandler) Create(c echo.Context) error {
	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// Get handles the order lookup by payment reference.
func (h *OrderHandler) Get(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return response.BadRequest(c, "INVALID_INPUT", "reference is required")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), reference)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}
