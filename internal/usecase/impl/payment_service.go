package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCurrency = "NGN"

// Gateway events that settle a charge either way.
const (
	webhookEventChargeSuccess = "charge.success"
	webhookEventChargeFailed  = "charge.failed"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager       repository.TransactionManager
	paymentRepo     repository.PaymentRepository
	gateway         service.PaymentGateway
	qrcodeService   service.QRCodeService
	publisher       service.EventPublisher
	referencePrefix string
	callbackURL     string
	logger          *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PaymentRepo   repository.PaymentRepository
	Gateway       service.PaymentGateway
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	var referencePrefix, callbackURL string
	if params.Config.Paystack != nil {
		referencePrefix = params.Config.Paystack.ReferencePrefix
		callbackURL = params.Config.Paystack.CallbackURL
	}

	return &paymentService{
		txManager:       params.TxManager,
		paymentRepo:     params.PaymentRepo,
		gateway:         params.Gateway,
		qrcodeService:   params.QRCodeService,
		publisher:       params.Publisher,
		referencePrefix: referencePrefix,
		callbackURL:     callbackURL,
		logger:          params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitializePayment converts the major-unit amount to minor units, persists
// a pending intent under the reference and asks the gateway for an
// authorization URL. A client-supplied reference is honored as-is so a
// checkout order and its payment share one idempotency key.
func (srv *paymentService) InitializePayment(ctx context.Context, input *usecase.InitializePaymentInput) (*usecase.InitializePaymentOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
	}

	amount := int64(math.Round(input.Amount * 100))

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	reference := input.Reference
	if reference == "" {
		reference = srv.newReference()
	}

	callbackURL := input.CallbackURL
	if callbackURL == "" {
		callbackURL = srv.callbackURL
	}

	srv.log(ctx).Info("Initializing payment",
		slog.String("reference", reference),
		slog.Int64("amount", amount),
	)

	initResult, err := srv.gateway.Initialize(ctx, &service.InitializeRequest{
		Email:       input.Email,
		Amount:      amount,
		Currency:    currency,
		Reference:   reference,
		CallbackURL: callbackURL,
	})
	if err != nil {
		return nil, err
	}

	intent := &entity.PaymentIntent{
		Reference:        reference,
		Email:            input.Email,
		Amount:           amount,
		Currency:         currency,
		Status:           entity.PaymentStatusPending,
		AuthorizationURL: initResult.AuthorizationURL,
	}
	if err := srv.paymentRepo.Create(ctx, intent); err != nil {
		srv.log(ctx).Error("Failed to persist payment intent",
			slog.String("reference", reference),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return &usecase.InitializePaymentOutput{
		Reference:        reference,
		AuthorizationURL: initResult.AuthorizationURL,
		AccessCode:       initResult.AccessCode,
		Amount:           amount,
		Gateway:          initResult.Raw,
	}, nil
}

// VerifyPayment re-checks the reference against the gateway and settles the
// local intent. Already-terminal intents are returned as stored, so the
// operation is idempotent and safe to race with the webhook.
func (srv *paymentService) VerifyPayment(ctx context.Context, reference string) (*usecase.VerifyPaymentOutput, error) {
	intent, err := srv.paymentRepo.FindByReference(ctx, reference)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, domainerrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment intent")
	}

	if intent.Status.IsTerminal() {
		return verifyOutputFromIntent(intent), nil
	}

	verifyResult, err := srv.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	status := entity.StatusFromGateway(verifyResult.Status)
	if status == entity.PaymentStatusSucceeded && verifyResult.Amount != intent.Amount {
		srv.log(ctx).Warn("Gateway amount does not match intent, treating as failed",
			slog.String("reference", reference),
			slog.Int64("intentAmount", intent.Amount),
			slog.Int64("gatewayAmount", verifyResult.Amount),
		)
		status = entity.PaymentStatusFailed
	}

	paidAt := parseGatewayTime(verifyResult.PaidAt)
	if err := srv.settleIntent(ctx, reference, status, paidAt); err != nil {
		return nil, err
	}

	intent.Status = status
	intent.PaidAt = paidAt

	return verifyOutputFromIntent(intent), nil
}

// HandleWebhookEvent applies one signature-verified webhook delivery. The
// event ID is claimed inside the same transaction as the settlement, so a
// replayed delivery is acknowledged without repeating side effects.
func (srv *paymentService) HandleWebhookEvent(ctx context.Context, event *service.WebhookEvent) error {
	eventID := webhookEventID(event)

	var alreadyProcessed bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		processed, err := repoFactory.NewWebhookEventRepository().MarkProcessed(ctx, &entity.WebhookEvent{
			EventID:   eventID,
			EventType: event.Event,
		})
		if err != nil {
			return errors.Wrap(err, "failed to record webhook event")
		}
		if processed {
			alreadyProcessed = true

			return nil
		}

		switch event.Event {
		case webhookEventChargeSuccess, webhookEventChargeFailed:
			return srv.applyCharge(ctx, repoFactory, event)
		default:
			srv.log(ctx).Info("Ignoring webhook event",
				slog.String("event", event.Event),
			)

			return nil
		}
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute webhook transaction")
	}

	if alreadyProcessed {
		srv.log(ctx).Info("Webhook event replayed, skipping",
			slog.String("eventID", eventID),
			slog.String("event", event.Event),
		)

		return nil
	}

	if event.Event == webhookEventChargeSuccess || event.Event == webhookEventChargeFailed {
		srv.publishPaymentEvent(ctx, event)
	}

	return nil
}

// applyCharge settles the intent and moves the order within the webhook
// transaction.
func (srv *paymentService) applyCharge(ctx context.Context, repoFactory repository.RepositoryFactory, event *service.WebhookEvent) error {
	paymentRepo := repoFactory.NewPaymentRepository()

	intent, err := paymentRepo.FindByReference(ctx, event.Data.Reference)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		// Unknown reference, possibly for another environment. Record and move on.
		srv.log(ctx).Warn("Webhook references unknown payment intent",
			slog.String("reference", event.Data.Reference),
		)

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find payment intent for webhook")
	}

	status := entity.StatusFromGateway(event.Data.Status)
	if event.Event == webhookEventChargeFailed {
		status = entity.PaymentStatusFailed
	}
	if status == entity.PaymentStatusSucceeded && event.Data.Amount != intent.Amount {
		srv.log(ctx).Warn("Webhook amount does not match intent, treating as failed",
			slog.String("reference", event.Data.Reference),
			slog.Int64("intentAmount", intent.Amount),
			slog.Int64("webhookAmount", event.Data.Amount),
		)
		status = entity.PaymentStatusFailed
	}

	paidAt := parseGatewayTime(event.Data.PaidAt)
	if err := paymentRepo.MarkTerminal(ctx, event.Data.Reference, status, paidAt); err != nil {
		return errors.Wrap(err, "failed to settle payment intent")
	}

	return srv.advanceOrder(ctx, repoFactory.NewOrderRepository(), event.Data.Reference, status)
}

// settleIntent marks the intent terminal and advances the linked order in a
// single transaction.
func (srv *paymentService) settleIntent(ctx context.Context, reference string, status entity.PaymentStatus, paidAt *time.Time) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPaymentRepository().MarkTerminal(ctx, reference, status, paidAt); err != nil {
			return errors.Wrap(err, "failed to settle payment intent")
		}

		return srv.advanceOrder(ctx, repoFactory.NewOrderRepository(), reference, status)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute payment settlement transaction")
	}

	return nil
}

// advanceOrder moves the order linked to the reference to processing on
// success or cancelled on failure.
func (srv *paymentService) advanceOrder(ctx context.Context, orderRepo repository.OrderRepository, reference string, status entity.PaymentStatus) error {
	order, err := orderRepo.FindByReference(ctx, reference)
	if errors.Is(err, repository.ErrOrderNotFound) {
		srv.log(ctx).Warn("No order linked to payment reference",
			slog.String("reference", reference),
		)

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find order for payment")
	}

	if order.Status != entity.OrderStatusPending {
		return nil
	}

	next := entity.OrderStatusCancelled
	if status == entity.PaymentStatusSucceeded {
		next = entity.OrderStatusProcessing
	}

	if err := orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

// GetPaymentQR renders the intent's authorization URL as a PNG QR code.
func (srv *paymentService) GetPaymentQR(ctx context.Context, reference string) ([]byte, error) {
	intent, err := srv.paymentRepo.FindByReference(ctx, reference)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, domainerrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment intent")
	}

	if intent.AuthorizationURL == "" {
		return nil, domainerrors.ErrNotFound.WrapMessage("payment intent has no authorization URL")
	}

	return srv.qrcodeService.GeneratePaymentQR(intent.AuthorizationURL)
}

// publishPaymentEvent hands the settled charge to the worker. Publish
// failures are logged, not surfaced: the webhook is already applied and the
// gateway must receive a 2xx so it stops retrying.
func (srv *paymentService) publishPaymentEvent(ctx context.Context, event *service.WebhookEvent) {
	paymentEvent := &service.PaymentEvent{
		EventType: event.Event,
		Reference: event.Data.Reference,
		Email:     event.Data.Customer.Email,
		Amount:    event.Data.Amount,
		Currency:  event.Data.Currency,
		PaidAt:    event.Data.PaidAt,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishPaymentEvent(ctx, paymentEvent); err != nil {
		srv.log(ctx).Error("Failed to publish payment event",
			slog.String("reference", event.Data.Reference),
			slog.Any("error", err),
		)
	}
}

// newReference builds a reference of the form prefix_<unix>_<hex>. The
// timestamp keeps references sortable, the random suffix keeps them unique.
func (srv *paymentService) newReference() string {
	suffix := make([]byte, 8)
	_, _ = rand.Read(suffix)

	return fmt.Sprintf("%s_%d_%s", srv.referencePrefix, time.Now().Unix(), hex.EncodeToString(suffix))
}

func verifyOutputFromIntent(intent *entity.PaymentIntent) *usecase.VerifyPaymentOutput {
	out := &usecase.VerifyPaymentOutput{
		Reference: intent.Reference,
		Status:    intent.Status,
		Amount:    intent.Amount,
		Currency:  intent.Currency,
	}
	if intent.PaidAt != nil {
		out.PaidAt = intent.PaidAt.UTC().Format(time.RFC3339)
	}

	return out
}

// webhookEventID derives the idempotency key for a delivery. Paystack sends
// a numeric data.id for charge events; deliveries without one fall back to
// the event-name/reference pair.
func webhookEventID(event *service.WebhookEvent) string {
	if event.Data.ID != 0 {
		return strconv.FormatInt(event.Data.ID, 10)
	}

	return fmt.Sprintf("%s:%s", event.Event, event.Data.Reference)
}

// parseGatewayTime parses Paystack's RFC3339 timestamps, returning nil for
// absent or malformed values.
func parseGatewayTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}

	return &parsed
}
