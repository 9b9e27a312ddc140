package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromGateway(t *testing.T) {
	tests := []struct {
		name          string
		gatewayStatus string
		want          PaymentStatus
	}{
		{"literal success", "success", PaymentStatusSucceeded},
		{"failed", "failed", PaymentStatusFailed},
		{"abandoned", "abandoned", PaymentStatusFailed},
		{"pending is not success", "pending", PaymentStatusFailed},
		{"missing field", "", PaymentStatusFailed},
		{"case sensitive", "Success", PaymentStatusFailed},
		{"truthy garbage", "true", PaymentStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromGateway(tt.gatewayStatus))
		})
	}
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.True(t, PaymentStatusSucceeded.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
}
