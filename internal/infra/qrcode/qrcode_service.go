// Package qrcode renders checkout handoff links as QR images.
package qrcode

import (
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR renders the gateway authorization URL as a PNG so a
// customer can continue checkout on another device.
func (s *qrcodeService) GeneratePaymentQR(authorizationURL string) ([]byte, error) {
	if authorizationURL == "" {
		return nil, errors.New("authorization URL is empty")
	}

	qrCode, err := qrcode.New(authorizationURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
