package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceMocks struct {
	paymentRepo *mockRepo.MockPaymentRepository
	orderRepo   *mockRepo.MockOrderRepository
	webhookRepo *mockRepo.MockWebhookEventRepository
	gateway     *mockSvc.MockPaymentGateway
	qrcode      *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
}

func newPaymentService(t *testing.T) (usecase.PaymentUsecase, *paymentServiceMocks) {
	t.Helper()

	m := &paymentServiceMocks{
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		webhookRepo: mockRepo.NewMockWebhookEventRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			PaymentRepo:      m.paymentRepo,
			OrderRepo:        m.orderRepo,
			WebhookEventRepo: m.webhookRepo,
		},
	}

	cfg := &config.Config{
		Paystack: &config.PaystackConfig{
			ReferencePrefix: "store",
			CallbackURL:     "https://shop.example.com/payment/callback",
		},
	}

	svc := NewPaymentService(PaymentServiceParams{
		TxManager:     txManager,
		PaymentRepo:   m.paymentRepo,
		Gateway:       m.gateway,
		QRCodeService: m.qrcode,
		Publisher:     m.publisher,
		Config:        cfg,
		Logger:        slog.Default(),
	})

	return svc, m
}

func TestPaymentService_InitializePayment(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.gateway.EXPECT().
		Initialize(ctx, mock.AnythingOfType("*service.InitializeRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*service.InitializeRequest)
			assert.Equal(t, "buyer@example.com", req.Email)
			assert.Equal(t, int64(50375), req.Amount)
			assert.Equal(t, "NGN", req.Currency)
			assert.Equal(t, "https://shop.example.com/payment/callback", req.CallbackURL)
			assert.Regexp(t, `^store_\d+_[0-9a-f]{16}$`, req.Reference)
		}).
		Return(&service.InitializeResult{
			AuthorizationURL: "https://checkout.paystack.com/abc",
			AccessCode:       "abc",
			Raw:              json.RawMessage(`{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc"}`),
		}, nil)

	m.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PaymentIntent")).
		Run(func(args mock.Arguments) {
			intent := args.Get(1).(*entity.PaymentIntent)
			assert.Equal(t, entity.PaymentStatusPending, intent.Status)
			assert.Equal(t, int64(50375), intent.Amount)
		}).
		Return(nil)

	// 503.75 naira becomes 50375 kobo.
	out, err := svc.InitializePayment(ctx, &usecase.InitializePaymentInput{
		Email:  "buyer@example.com",
		Amount: 503.75,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.paystack.com/abc", out.AuthorizationURL)
	assert.Equal(t, int64(50375), out.Amount)
	assert.Regexp(t, `^store_\d+_[0-9a-f]{16}$`, out.Reference)
	// The gateway's data payload rides along untouched.
	assert.JSONEq(t,
		`{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc"}`,
		string(out.Gateway),
	)
}

func TestPaymentService_InitializePayment_ClientReference(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.gateway.EXPECT().
		Initialize(ctx, mock.AnythingOfType("*service.InitializeRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*service.InitializeRequest)
			assert.Equal(t, "store_order_42", req.Reference)
		}).
		Return(&service.InitializeResult{AuthorizationURL: "https://checkout.paystack.com/abc"}, nil)

	m.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PaymentIntent")).
		Return(nil)

	out, err := svc.InitializePayment(ctx, &usecase.InitializePaymentInput{
		Email:     "buyer@example.com",
		Amount:    100,
		Reference: "store_order_42",
	})
	require.NoError(t, err)
	assert.Equal(t, "store_order_42", out.Reference)
	assert.Equal(t, int64(10000), out.Amount)
}

func TestPaymentService_InitializePayment_NonPositiveAmount(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.InitializePayment(context.Background(), &usecase.InitializePaymentInput{
		Email:  "buyer@example.com",
		Amount: 0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_VerifyPayment_TerminalIntentSkipsGateway(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	paidAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m.paymentRepo.EXPECT().
		FindByReference(ctx, "store_ref_1").
		Return(&entity.PaymentIntent{
			Reference: "store_ref_1",
			Status:    entity.PaymentStatusSucceeded,
			Amount:    50375,
			Currency:  "NGN",
			PaidAt:    &paidAt,
		}, nil)

	out, err := svc.VerifyPayment(ctx, "store_ref_1")
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusSucceeded, out.Status)
	assert.Equal(t, "2024-05-01T10:00:00Z", out.PaidAt)
	// No gateway expectation was set: a terminal intent must not be re-verified.
}

func TestPaymentService_VerifyPayment_Success(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.paymentRepo.EXPECT().
		FindByReference(ctx, "store_ref_1").
		Return(&entity.PaymentIntent{
			Reference: "store_ref_1",
			Status:    entity.PaymentStatusPending,
			Amount:    50375,
			Currency:  "NGN",
		}, nil)

	m.gateway.EXPECT().
		Verify(ctx, "store_ref_1").
		Return(&service.VerifyResult{
			Status:   "success",
			Amount:   50375,
			Currency: "NGN",
			PaidAt:   "2024-05-01T10:00:00Z",
		}, nil)

	m.paymentRepo.EXPECT().
		MarkTerminal(ctx, "store_ref_1", entity.PaymentStatusSucceeded, mock.AnythingOfType("*time.Time")).
		Return(nil)

	order := &entity.Order{Reference: "store_ref_1", Status: entity.OrderStatusPending}
	m.orderRepo.EXPECT().
		FindByReference(ctx, "store_ref_1").
		Return(order, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing).
		Return(nil)

	out, err := svc.VerifyPayment(ctx, "store_ref_1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSucceeded, out.Status)
}

func TestPaymentService_VerifyPayment_MissingStatusFieldFails(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.paymentRepo.EXPECT().
		FindByReference(ctx, "store_ref_2").
		Return(&entity.PaymentIntent{
			Reference: "store_ref_2",
			Status:    entity.PaymentStatusPending,
			Amount:    50375,
		}, nil)

	// Gateway response carries no transaction status at all.
	m.gateway.EXPECT().
		Verify(ctx, "store_ref_2").
		Return(&service.VerifyResult{Amount: 50375}, nil)

	m.paymentRepo.EXPECT().
		MarkTerminal(ctx, "store_ref_2", entity.PaymentStatusFailed, (*time.Time)(nil)).
		Return(nil)

	m.orderRepo.EXPECT().
		FindByReference(ctx, "store_ref_2").
		Return(nil, repository.ErrOrderNotFound)

	out, err := svc.VerifyPayment(ctx, "store_ref_2")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, out.Status)
}

func TestPaymentService_VerifyPayment_AmountMismatchFails(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.paymentRepo.EXPECT().
		FindByReference(ctx, "store_ref_3").
		Return(&entity.PaymentIntent{
			Reference: "store_ref_3",
			Status:    entity.PaymentStatusPending,
			Amount:    50375,
		}, nil)

	m.gateway.EXPECT().
		Verify(ctx, "store_ref_3").
		Return(&service.VerifyResult{Status: "success", Amount: 100}, nil)

	m.paymentRepo.EXPECT().
		MarkTerminal(ctx, "store_ref_3", entity.PaymentStatusFailed, (*time.Time)(nil)).
		Return(nil)

	m.orderRepo.EXPECT().
		FindByReference(ctx, "store_ref_3").
		Return(nil, repository.ErrOrderNotFound)

	out, err := svc.VerifyPayment(ctx, "store_ref_3")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, out.Status)
}

func TestPaymentService_VerifyPayment_UnknownReference(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.paymentRepo.EXPECT().
		FindByReference(ctx, "missing").
		Return(nil, repository.ErrPaymentNotFound)

	_, err := svc.VerifyPayment(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func chargeSuccessEvent() *service.WebhookEvent {
	event := &service.WebhookEvent{
		Event: "charge.success",
		Data: service.WebhookData{
			ID:        302961,
			Reference: "store_ref_1",
			Status:    "success",
			Amount:    50375,
			Currency:  "NGN",
			PaidAt:    "2024-05-01T10:00:00Z",
		},
	}
	event.Data.Customer.Email = "buyer@example.com"

	return event
}

func TestPaymentService_HandleWebhookEvent_ChargeSuccess(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.webhookRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*entity.WebhookEvent)
			assert.Equal(t, "302961", event.EventID)
			assert.Equal(t, "charge.success", event.EventType)
		}).
		Return(false, nil)

	m.paymentRepo.EXPECT().
		FindByReference(ctx, "store_ref_1").
		Return(&entity.PaymentIntent{
			Reference: "store_ref_1",
			Status:    entity.PaymentStatusPending,
			Amount:    50375,
		}, nil)

	m.paymentRepo.EXPECT().
		MarkTerminal(ctx, "store_ref_1", entity.PaymentStatusSucceeded, mock.AnythingOfType("*time.Time")).
		Return(nil)

	order := &entity.Order{Reference: "store_ref_1", Status: entity.OrderStatusPending}
	m.orderRepo.EXPECT().
		FindByReference(ctx, "store_ref_1").
		Return(order, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing).
		Return(nil)

	m.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.AnythingOfType("*service.PaymentEvent")).
		Return(nil)

	err := svc.HandleWebhookEvent(ctx, chargeSuccessEvent())
	require.NoError(t, err)
}

func TestPaymentService_HandleWebhookEvent_ChargeFailed(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.webhookRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(false, nil)

	m.paymentRepo.EXPECT().
		FindByReference(ctx, "store_ref_1").
		Return(&entity.PaymentIntent{
			Reference: "store_ref_1",
			Status:    entity.PaymentStatusPending,
			Amount:    50375,
		}, nil)

	m.paymentRepo.EXPECT().
		MarkTerminal(ctx, "store_ref_1", entity.PaymentStatusFailed, (*time.Time)(nil)).
		Return(nil)

	order := &entity.Order{Reference: "store_ref_1", Status: entity.OrderStatusPending}
	m.orderRepo.EXPECT().
		FindByReference(ctx, "store_ref_1").
		Return(order, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled).
		Return(nil)

	m.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.AnythingOfType("*service.PaymentEvent")).
		Return(nil)

	err := svc.HandleWebhookEvent(ctx, &service.WebhookEvent{
		Event: "charge.failed",
		Data: service.WebhookData{
			ID:        302962,
			Reference: "store_ref_1",
			Status:    "failed",
			Amount:    50375,
		},
	})
	require.NoError(t, err)
}

func TestPaymentService_HandleWebhookEvent_ReplayIsNoop(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.webhookRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(true, nil)

	// No settlement, no publish: the replayed delivery is acknowledged only.
	err := svc.HandleWebhookEvent(ctx, chargeSuccessEvent())
	require.NoError(t, err)
}

func TestPaymentService_HandleWebhookEvent_IgnoresUnknownEvents(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.webhookRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(false, nil)

	err := svc.HandleWebhookEvent(ctx, &service.WebhookEvent{
		Event: "transfer.success",
		Data:  service.WebhookData{ID: 99, Reference: "other"},
	})
	require.NoError(t, err)
}

func TestPaymentService_GetPaymentQR(t *testing.T) {
	svc, m := newPaymentService(t)
	ctx := context.Background()

	m.paymentRepo.EXPECT().
		FindByReference(ctx, "store_ref_1").
		Return(&entity.PaymentIntent{
			Reference:        "store_ref_1",
			AuthorizationURL: "https://checkout.paystack.com/abc",
		}, nil)

	m.qrcode.EXPECT().
		GeneratePaymentQR("https://checkout.paystack.com/abc").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.GetPaymentQR(ctx, "store_ref_1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
