// Package usecase defines the application-layer interfaces consumed by the
// HTTP delivery layer.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase defines the interface for cart pricing use cases
type CartUsecase interface {
	// Quote prices the submitted cart lines with the configured shipping
	// fee and VAT rate.
	Quote(ctx context.Context, lines []entity.CartLine) (*entity.CartQuote, error)
}
