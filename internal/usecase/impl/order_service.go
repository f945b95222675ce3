package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "mahsoulna/internal/delivery/context"
	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/domain/service"
	"mahsoulna/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo     repository.OrderRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:     params.OrderRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders retrieves a user's order history, oldest first. An empty status
// falls back to no filtering.
func (srv *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	status := input.Status
	if status == "" {
		status = entity.OrderStatusFilterAll
	}

	orders, err := srv.orderRepo.ListByUser(ctx, input.UserID, status)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ownedOrder loads the order header and hides orders that belong to another
// user, reporting them as not found rather than forbidden.
func (srv *orderService) ownedOrder(ctx context.Context, userID, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}
	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found for user")
	}

	return order, nil
}

// GetOrderLines retrieves the cart snapshot written for an order.
func (srv *orderService) GetOrderLines(ctx context.Context, userID, orderID int64) ([]entity.OrderLine, error) {
	if _, err := srv.ownedOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}

	lines, err := srv.orderRepo.FindOrderLines(ctx, orderID)
	if err != nil {
		srv.log(ctx).Error("Failed to load order lines", slog.Int64("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load order lines")
	}

	return lines, nil
}

// ReceiptQR renders the order's receipt code as a PNG QR image.
func (srv *orderService) ReceiptQR(ctx context.Context, userID, orderID int64) ([]byte, error) {
	order, err := srv.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GeneratePNG(strconv.FormatInt(order.OrderReceipt, 10))
	if err != nil {
		srv.log(ctx).Error("Failed to render receipt QR code", slog.Int64("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render receipt QR code")
	}

	return png, nil
}
