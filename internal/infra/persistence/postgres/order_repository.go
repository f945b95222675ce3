package postgres

import (
	"context"
	"encoding/json"

	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order header row and sets the generated id and
// order date back on the entity.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReceipt
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("order references a missing user or location")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.OrderDate = orderM.OrderDate

	return nil
}

// CreateOrderLines serializes the cart snapshot and writes the single
// order_items row for the order.
func (repo *orderRepository) CreateOrderLines(ctx context.Context, orderID int64, lines []entity.OrderLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return errors.Wrap(err, "failed to serialize order lines")
	}

	itemM := model.OrderItemModel{
		OrderID:         orderID,
		OrderedProducts: string(payload),
	}
	if err := repo.db.WithContext(ctx).Create(&itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("order lines already written for this order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order lines")
	}

	return nil
}

// FindByReceipt retrieves the order a user placed with the given receipt code.
func (repo *orderRepository) FindByReceipt(ctx context.Context, userID, receipt int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND order_receipt = ?", userID, receipt).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by receipt")
	}

	return toOrderDomain(&orderM), nil
}

// FindByID retrieves a single order header.
func (repo *orderRepository) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves a user's orders in creation order, optionally filtered
// by exact status equality.
func (repo *orderRepository) ListByUser(ctx context.Context, userID int64, status string) ([]*entity.Order, error) {
	tx := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != entity.OrderStatusFilterAll {
		tx = tx.Where("order_status = ?", status)
	}

	var orderMs []model.OrderModel
	if err := tx.Order("id").Find(&orderMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// FindOrderLines retrieves and deserializes the snapshot written for an order.
// A missing snapshot row yields an empty slice rather than an error.
func (repo *orderRepository) FindOrderLines(ctx context.Context, orderID int64) ([]entity.OrderLine, error) {
	var itemM model.OrderItemModel
	err := repo.db.WithContext(ctx).Where("order_id = ?", orderID).First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entity.OrderLine{}, nil
		}

		return nil, errors.Wrap(err, "failed to find order lines")
	}

	var lines []entity.OrderLine
	if err := json.Unmarshal([]byte(itemM.OrderedProducts), &lines); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize order lines")
	}

	return lines, nil
}

// toOrderDomain maps the GORM model to the pure domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:           orderM.ID,
		UserID:       orderM.UserID,
		LocationID:   orderM.LocationID,
		OrderReceipt: orderM.OrderReceipt,
		TotalAmount:  orderM.TotalAmount,
		OrderStatus:  orderM.OrderStatus,
		ChangeFor:    orderM.ChangeFor,
		SpecialReq:   orderM.SpecialReq,
		OrderDate:    orderM.OrderDate,
	}
}

// fromOrderDomain maps the domain entity to the GORM model.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		UserID:       order.UserID,
		OrderReceipt: order.OrderReceipt,
		LocationID:   order.LocationID,
		TotalAmount:  order.TotalAmount,
		OrderStatus:  order.OrderStatus,
		ChangeFor:    order.ChangeFor,
		SpecialReq:   order.SpecialReq,
	}
}
