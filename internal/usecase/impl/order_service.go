package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo       repository.OrderRepository
	referencePrefix string
	shippingFlatFee int64
	taxRate         float64
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	var referencePrefix string
	if params.Config.Paystack != nil {
		referencePrefix = params.Config.Paystack.ReferencePrefix
	}

	return &orderService{
		orderRepo:       params.OrderRepo,
		referencePrefix: referencePrefix,
		shippingFlatFee: params.Config.Pricing.ShippingFlatFee,
		taxRate:         params.Config.Pricing.TaxRate,
		logger:          params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder snapshots a priced cart as a pending order. The payment flow
// later binds the reference to a gateway intent.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateCartLines(input.Lines); err != nil {
		return nil, err
	}

	quote := entity.PriceCart(input.Lines, srv.shippingFlatFee, srv.taxRate)
	if quote.Total <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cart total must be positive")
	}

	order := &entity.Order{
		Email:       input.Email,
		Reference:   fmt.Sprintf("%s_%s", srv.referencePrefix, uuid.New().String()),
		Status:      entity.OrderStatusPending,
		TotalAmount: quote.Total,
		Lines:       cartLinesToOrderLines(input.Lines),
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("reference", order.Reference),
		slog.Int64("total", order.TotalAmount),
	)

	return order, nil
}

func cartLinesToOrderLines(lines []entity.CartLine) []entity.OrderLine {
	orderLines := make([]entity.OrderLine, 0, len(lines))
	for _, line := range lines {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			productID = uuid.Nil
		}
		orderLines = append(orderLines, entity.OrderLine{
			ProductID: productID,
			VariantID: line.VariantID,
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return orderLines
}

// GetOrder retrieves an order by its payment reference.
func (srv *orderService) GetOrder(ctx context.Context, reference string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByReference(ctx, reference)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
