package usecase

import (
	"context"

	"mahsoulna/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DeliveryLocation carries the raw coordinates and address the client
// captured at checkout time.
type DeliveryLocation struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// PlaceOrderInput defines the data required to place an order. The cart lines
// are a snapshot of what the client's cart held when the user confirmed.
type PlaceOrderInput struct {
	UserID       int64
	OrderReceipt int64
	Location     DeliveryLocation
	Lines        []entity.OrderLine
	TotalAmount  decimal.Decimal
	ChangeFor    decimal.Decimal
	SpecialReq   string
}

// PlaceOrderOutput returns the persisted order. Replayed is true when the
// receipt code had already been used by this user and the original order was
// returned instead of creating a new one.
type PlaceOrderOutput struct {
	Order    *entity.Order
	Replayed bool
}

// CheckoutUsecase defines the order placement workflow: resolving the
// delivery location, writing the order header and persisting the cart
// snapshot as one atomic unit.
type CheckoutUsecase interface {
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)
}
