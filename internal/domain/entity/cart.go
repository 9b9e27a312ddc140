package entity

import "math"

// CartLine is one entry of a client-held cart. Carts are not persisted
// server-side; the client submits its lines for a fresh quote on every
// mutation.
type CartLine struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Title     string `json:"title"`
	// UnitPrice in minor currency units (kobo).
	UnitPrice int64 `json:"unit_price" validate:"min=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// CartQuote is the priced breakdown of a list of cart lines.
type CartQuote struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// PriceCart computes the quote for an ordered list of cart lines.
// An empty cart (or one whose lines sum to zero) yields an all-zero quote:
// shipping and tax are only charged once there is something to ship.
func PriceCart(lines []CartLine, shippingFlatFee int64, taxRate float64) CartQuote {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.UnitPrice * int64(line.Quantity)
	}

	if subtotal == 0 {
		return CartQuote{}
	}

	tax := int64(math.Round(float64(subtotal) * taxRate))

	return CartQuote{
		Subtotal: subtotal,
		Shipping: shippingFlatFee,
		Tax:      tax,
		Total:    subtotal + tax + shippingFlatFee,
	}
}
