package usecase

import (
	"context"

	"mahsoulna/internal/domain/entity"
)

// ListOrdersInput defines the order-history query. Status filters by exact
// status-string equality; entity.OrderStatusFilterAll disables the filter.
type ListOrdersInput struct {
	UserID int64
	Status string
}

// OrderUsecase defines the read side of order history.
type OrderUsecase interface {
	// ListOrders retrieves a user's orders, oldest first.
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)

	// GetOrderLines retrieves the cart snapshot written for an order. Only
	// the order's owner can read it; a foreign order reads as not found.
	GetOrderLines(ctx context.Context, userID, orderID int64) ([]entity.OrderLine, error)

	// ReceiptQR renders a PNG QR code of the order's receipt code, so the
	// courier can scan it at handoff. Only the order's owner can render it.
	ReceiptQR(ctx context.Context, userID, orderID int64) ([]byte, error)
}
