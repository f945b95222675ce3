package usecase

import (
	"context"
)

// ToggleWishlistOutput reports the state of the wishlist pair after a toggle.
type ToggleWishlistOutput struct {
	Added bool
}

// WishlistUsecase defines the per-user wishlist operations.
type WishlistUsecase interface {
	// Toggle flips the presence of a product on the user's wishlist.
	Toggle(ctx context.Context, userID, productID int64) (*ToggleWishlistOutput, error)

	// ListProductIDs retrieves the raw product ids on the wishlist.
	ListProductIDs(ctx context.Context, userID int64) ([]int64, error)
}
