// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mahsoulna/internal/delivery/context"
	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder resolves the delivery location, writes the order header and
// persists the cart snapshot within a single transaction. A failure at any
// step rolls back everything, so no half-placed order is ever visible.
//
// The receipt code doubles as an idempotency key: when the (user, receipt)
// pair has already been committed, the original order is returned unchanged
// instead of creating a duplicate.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if len(input.Lines) == 0 {
		srv.log(ctx).Warn("Rejecting order with empty cart", slog.Int64("userID", input.UserID))

		return nil, domainerrors.ErrEmptyCart
	}

	srv.log(ctx).Info("Placing order",
		slog.Int64("userID", input.UserID),
		slog.Int64("receipt", input.OrderReceipt),
		slog.Int("lines", len(input.Lines)),
	)

	var placedOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()
		orderRepo := repoFactory.OrderRepo()

		location := &entity.Location{
			Latitude:  input.Location.Latitude,
			Longitude: input.Location.Longitude,
			Address:   input.Location.Address,
		}

		locationID, err := locationRepo.Resolve(ctx, location)
		if err != nil {
			return errors.Wrap(err, "failed to resolve delivery location")
		}

		order := &entity.Order{
			UserID:       input.UserID,
			LocationID:   locationID,
			OrderReceipt: input.OrderReceipt,
			TotalAmount:  input.TotalAmount,
			OrderStatus:  entity.OrderStatusInProgress,
			ChangeFor:    input.ChangeFor,
			SpecialReq:   input.SpecialReq,
		}

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order header")
		}

		if err := orderRepo.CreateOrderLines(ctx, order.ID, input.Lines); err != nil {
			return errors.Wrap(err, "failed to create order lines")
		}

		placedOrder = order

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrDuplicateReceipt) {
			return srv.replayOrder(ctx, input.UserID, input.OrderReceipt)
		}

		srv.log(ctx).Error("Failed to execute place order transaction",
			slog.Int64("userID", input.UserID),
			slog.Int64("receipt", input.OrderReceipt),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	srv.log(ctx).Debug("Order placed",
		slog.Int64("userID", input.UserID),
		slog.Int64("orderID", placedOrder.ID),
	)

	return &usecase.PlaceOrderOutput{Order: placedOrder}, nil
}

// replayOrder handles a resubmitted receipt code by returning the order that
// was committed the first time around.
func (srv *checkoutService) replayOrder(ctx context.Context, userID, receipt int64) (*usecase.PlaceOrderOutput, error) {
	srv.log(ctx).Info("Receipt already committed, replaying original order",
		slog.Int64("userID", userID),
		slog.Int64("receipt", receipt),
	)

	original, err := srv.orderRepo.FindByReceipt(ctx, userID, receipt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load original order for receipt replay")
	}

	return &usecase.PlaceOrderOutput{Order: original, Replayed: true}, nil
}
