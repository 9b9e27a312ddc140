package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (usecase.OrderUsecase, *mockRepo.MockOrderRepository) {
	t.Helper()

	orderRepo := mockRepo.NewMockOrderRepository(t)

	cfg := &config.Config{
		Paystack: &config.PaystackConfig{ReferencePrefix: "store"},
		Pricing: &config.PricingConfig{
			ShippingFlatFee: 2000,
			TaxRate:         0.075,
		},
	}

	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		Config:    cfg,
		Logger:    slog.Default(),
	})

	return svc, orderRepo
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc, orderRepo := newOrderService(t)
	ctx := context.Background()
	productID := uuid.New()

	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.Order)
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			assert.Equal(t, int64(50375), order.TotalAmount)
			assert.True(t, strings.HasPrefix(order.Reference, "store_"))
			require.Len(t, order.Lines, 1)
			assert.Equal(t, productID, order.Lines[0].ProductID)
		}).
		Return(nil)

	order, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		Email: "buyer@example.com",
		Lines: []entity.CartLine{
			{ProductID: productID.String(), Title: "Ankara Shirt", UnitPrice: 15000, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", order.Email)
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		Email: "buyer@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_NegativeQuantityLine(t *testing.T) {
	svc, _ := newOrderService(t)

	// A negative-quantity line mixed into an otherwise valid cart must not
	// snapshot a discounted order. No repository expectation is set: the
	// order must never reach persistence.
	_, err := svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		Email: "buyer@example.com",
		Lines: []entity.CartLine{
			{ProductID: uuid.New().String(), Title: "Ankara Shirt", UnitPrice: 15000, Quantity: 3},
			{ProductID: uuid.New().String(), Title: "Ankara Shirt", UnitPrice: 45000, Quantity: -1},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetOrder(t *testing.T) {
	svc, orderRepo := newOrderService(t)
	ctx := context.Background()

	orderRepo.EXPECT().
		FindByReference(ctx, "store_abc").
		Return(&entity.Order{Reference: "store_abc", Status: entity.OrderStatusProcessing}, nil)

	order, err := svc.GetOrder(ctx, "store_abc")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc, orderRepo := newOrderService(t)
	ctx := context.Background()

	orderRepo.EXPECT().
		FindByReference(ctx, "store_missing").
		Return(nil, repository.ErrOrderNotFound)

	_, err := svc.GetOrder(ctx, "store_missing")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
