package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new instance of orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := fromOrderDomain(order)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "order reference already exists")
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	order.UpdatedAt = orderModel.UpdatedAt
	for i, lineModel := range orderModel.Lines {
		order.Lines[i].ID = lineModel.ID
		order.Lines[i].OrderID = orderModel.ID
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&orderModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderModel), nil
}

func (r *orderRepository) FindByReference(ctx context.Context, reference string) (*entity.Order, error) {
	var orderModel model.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&orderModel, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by reference")
	}

	return toOrderDomain(&orderModel), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) HasPurchase(ctx context.Context, email string, productID uuid.UUID, statuses []entity.OrderStatus) (bool, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusStrings = append(statusStrings, string(status))
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Joins("JOIN order_lines ON order_lines.order_id = orders.id").
		Where("orders.email = ? AND order_lines.product_id = ? AND orders.status IN ?",
			email, productID, statusStrings).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check purchase history")
	}

	return count > 0, nil
}

// toOrderDomain converts a GORM model to a domain entity.
func toOrderDomain(orderModel *model.OrderModel) *entity.Order {
	lines := make([]entity.OrderLine, 0, len(orderModel.Lines))
	for _, lineModel := range orderModel.Lines {
		lines = append(lines, entity.OrderLine{
			ID:        lineModel.ID,
			OrderID:   lineModel.OrderID,
			ProductID: lineModel.ProductID,
			VariantID: lineModel.VariantID,
			Title:     lineModel.Title,
			UnitPrice: lineModel.UnitPrice,
			Quantity:  lineModel.Quantity,
		})
	}

	return &entity.Order{
		ID:          orderModel.ID,
		Email:       orderModel.Email,
		Reference:   orderModel.Reference,
		Status:      entity.OrderStatus(orderModel.Status),
		TotalAmount: orderModel.TotalAmount,
		Lines:       lines,
		CreatedAt:   orderModel.CreatedAt,
		UpdatedAt:   orderModel.UpdatedAt,
	}
}

// fromOrderDomain converts a domain entity to a GORM model.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	lineModels := make([]*model.OrderLineModel, 0, len(order.Lines))
	for _, line := range order.Lines {
		lineModels = append(lineModels, &model.OrderLineModel{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return &model.OrderModel{
		ID:          order.ID,
		Email:       order.Email,
		Reference:   order.Reference,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		Lines:       lineModels,
	}
}
