package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService() *cartService {
	cfg := &config.Config{
		Pricing: &config.PricingConfig{
			ShippingFlatFee: 2000,
			TaxRate:         0.075,
		},
	}

	return NewCartService(CartServiceParams{Config: cfg}).(*cartService)
}

func TestCartService_Quote(t *testing.T) {
	service := newCartService()

	quote, err := service.Quote(context.Background(), []entity.CartLine{
		{ProductID: "p1", Title: "Ankara Shirt", UnitPrice: 15000, Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(45000), quote.Subtotal)
	assert.Equal(t, int64(2000), quote.Shipping)
	assert.Equal(t, int64(3375), quote.Tax)
	assert.Equal(t, int64(50375), quote.Total)
}

func TestCartService_Quote_EmptyCart(t *testing.T) {
	service := newCartService()

	quote, err := service.Quote(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.Shipping)
	assert.Zero(t, quote.Tax)
	assert.Zero(t, quote.Total)
}

func TestCartService_Quote_NonPositiveQuantity(t *testing.T) {
	service := newCartService()

	// A negative quantity must never price to a negative quote.
	for _, quantity := range []int{0, -1} {
		_, err := service.Quote(context.Background(), []entity.CartLine{
			{ProductID: "p1", Title: "Ankara Shirt", UnitPrice: 45000, Quantity: quantity},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "quantity %d", quantity)
	}
}

func TestCartService_Quote_NegativeUnitPrice(t *testing.T) {
	service := newCartService()

	_, err := service.Quote(context.Background(), []entity.CartLine{
		{ProductID: "p1", Title: "Ankara Shirt", UnitPrice: -45000, Quantity: 1},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
