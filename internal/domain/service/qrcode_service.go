package service

// QRCodeService renders QR code images for checkout handoff links.
type QRCodeService interface {
	// GeneratePaymentQR renders the payment authorization URL as a PNG so a
	// customer can continue checkout on another device.
	GeneratePaymentQR(authorizationURL string) ([]byte, error)
}
