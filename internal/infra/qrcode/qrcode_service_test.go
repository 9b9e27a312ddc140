package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GeneratePaymentQR("https://checkout.paystack.com/abc123")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_EmptyURL(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GeneratePaymentQR("")
	assert.Error(t, err)
}

func TestNewQRCodeService_ErrorCorrectionLevels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "unknown"} {
		service := NewQRCodeService(128, level)

		png, err := service.GeneratePaymentQR("https://example.com/pay")
		require.NoError(t, err, "level %s", level)
		assert.NotEmpty(t, png)
	}
}
