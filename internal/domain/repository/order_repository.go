// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mahsoulna/internal/domain/entity"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateReceipt is returned when an order with the same
	// (user, receipt code) pair has already been persisted.
	ErrDuplicateReceipt = errors.New("order receipt already used by this user")
)

// OrderRepository defines persistence for order headers and their line-item
// snapshots. Headers and snapshots are written by separate calls so the
// checkout usecase can compose them inside one transaction.
type OrderRepository interface {
	// CreateOrder inserts the order header row. The storage assigns the order
	// id and sets it on the entity. Returns ErrDuplicateReceipt when the
	// (user, receipt) uniqueness constraint rejects the insert.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderLines persists the full cart snapshot as a single document
	// row associated with the order. Written exactly once per order.
	CreateOrderLines(ctx context.Context, orderID int64, lines []entity.OrderLine) error

	// FindByReceipt retrieves the order a user placed with the given receipt
	// code. Returns ErrOrderNotFound when there is none.
	FindByReceipt(ctx context.Context, userID, receipt int64) (*entity.Order, error)

	// FindByID retrieves a single order header. Returns ErrOrderNotFound when
	// there is none.
	FindByID(ctx context.Context, orderID int64) (*entity.Order, error)

	// ListByUser retrieves a user's orders, optionally filtered by exact
	// status-string equality. The entity.OrderStatusFilterAll status means no
	// filter. Orders come back in creation order.
	ListByUser(ctx context.Context, userID int64, status string) ([]*entity.Order, error)

	// FindOrderLines retrieves the snapshot written for an order. Returns an
	// empty slice (not an error) when no snapshot row exists.
	FindOrderLines(ctx context.Context, orderID int64) ([]entity.OrderLine, error)
}
