package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceCart(t *testing.T) {
	const (
		shippingFlatFee = int64(2000)
		taxRate         = 0.075
	)

	t.Run("standard cart", func(t *testing.T) {
		lines := []CartLine{
			{ProductID: "p1", Title: "Ankara Shirt", UnitPrice: 15000, Quantity: 2},
			{ProductID: "p2", Title: "Leather Sandals", UnitPrice: 15000, Quantity: 1},
		}

		quote := PriceCart(lines, shippingFlatFee, taxRate)

		assert.Equal(t, int64(45000), quote.Subtotal)
		assert.Equal(t, int64(2000), quote.Shipping)
		assert.Equal(t, int64(3375), quote.Tax)
		assert.Equal(t, int64(50375), quote.Total)
	})

	t.Run("empty cart yields all-zero quote", func(t *testing.T) {
		quote := PriceCart(nil, shippingFlatFee, taxRate)

		assert.Equal(t, CartQuote{}, quote)
	})

	t.Run("zero-priced lines yield all-zero quote", func(t *testing.T) {
		lines := []CartLine{
			{ProductID: "p1", Title: "Freebie", UnitPrice: 0, Quantity: 3},
		}

		quote := PriceCart(lines, shippingFlatFee, taxRate)

		assert.Equal(t, CartQuote{}, quote)
	})

	t.Run("tax rounds to nearest kobo", func(t *testing.T) {
		// 1001 * 0.075 = 75.075, rounds to 75
		quote := PriceCart([]CartLine{
			{ProductID: "p1", Title: "Bead Bracelet", UnitPrice: 1001, Quantity: 1},
		}, shippingFlatFee, taxRate)

		assert.Equal(t, int64(75), quote.Tax)
		assert.Equal(t, int64(1001+75+2000), quote.Total)

		// 1010 * 0.075 = 75.75, rounds to 76
		quote = PriceCart([]CartLine{
			{ProductID: "p1", Title: "Bead Bracelet", UnitPrice: 1010, Quantity: 1},
		}, shippingFlatFee, taxRate)

		assert.Equal(t, int64(76), quote.Tax)
	})

	t.Run("quantity multiplies unit price", func(t *testing.T) {
		quote := PriceCart([]CartLine{
			{ProductID: "p1", Title: "Shea Butter", UnitPrice: 2500, Quantity: 4},
		}, shippingFlatFee, taxRate)

		assert.Equal(t, int64(10000), quote.Subtotal)
	})
}
