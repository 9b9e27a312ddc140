package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"

	"storefront/config"
	"storefront/internal/domain/service"
)

// signatureVerifier authenticates webhook deliveries with the account's
// secret key, per Paystack's x-paystack-signature scheme.
type signatureVerifier struct {
	secretKey []byte
}

// NewSignatureVerifier creates the webhook signature verifier.
func NewSignatureVerifier(cfg *config.Config) service.SignatureVerifier {
	var secret string
	if cfg.Paystack != nil {
		secret = cfg.Paystack.SecretKey
	}

	return &signatureVerifier{secretKey: []byte(secret)}
}

// Verify recomputes the HMAC-SHA512 digest of the raw body and compares it
// to the hex signature in constant time. An empty signature never matches.
func (v *signatureVerifier) Verify(body []byte, signature string) bool {
	if signature == "" || len(v.secretKey) == 0 {
		return false
	}

	mac := hmac.New(sha512.New, v.secretKey)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
