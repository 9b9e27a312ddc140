// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	shippingFlatFee int64
	taxRate         float64
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Config *config.Config
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		shippingFlatFee: params.Config.Pricing.ShippingFlatFee,
		taxRate:         params.Config.Pricing.TaxRate,
	}
}

// Quote prices the submitted cart lines. Carts are client-held, so every
// quote is computed fresh from the submitted lines.
func (srv *cartService) Quote(_ context.Context, lines []entity.CartLine) (*entity.CartQuote, error) {
	if err := validateCartLines(lines); err != nil {
		return nil, err
	}

	quote := entity.PriceCart(lines, srv.shippingFlatFee, srv.taxRate)

	return &quote, nil
}

// validateCartLines rejects non-positive quantities and negative unit
// prices before pricing, so no line can drag a quote or order total down.
func validateCartLines(lines []entity.CartLine) error {
	for _, line := range lines {
		if line.Quantity < 1 {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
		}
		if line.UnitPrice < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("unit price cannot be negative")
		}
	}

	return nil
}
