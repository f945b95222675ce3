package impl

import (
	"context"
	"log/slog"

	deliverycontext "mahsoulna/internal/delivery/context"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the presence of a product on the user's wishlist.
func (srv *wishlistService) Toggle(ctx context.Context, userID, productID int64) (*usecase.ToggleWishlistOutput, error) {
	added, err := srv.wishlistRepo.Toggle(ctx, userID, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to toggle wishlist item",
			slog.Int64("userID", userID),
			slog.Int64("productID", productID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to toggle wishlist item")
	}

	srv.log(ctx).Debug("Wishlist item toggled",
		slog.Int64("userID", userID),
		slog.Int64("productID", productID),
		slog.Bool("added", added),
	)

	return &usecase.ToggleWishlistOutput{Added: added}, nil
}

// ListProductIDs retrieves the raw product ids on the user's wishlist.
func (srv *wishlistService) ListProductIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := srv.wishlistRepo.ListProductIDs(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list wishlist ids", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list wishlist ids")
	}

	return ids, nil
}
