// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// WishlistRepository defines persistence for the per-user wishlist. The
// (user, product) pair is the natural key; Toggle relies on its uniqueness
// constraint so two concurrent toggles for the same pair cannot create
// duplicate rows.
type WishlistRepository interface {
	// Toggle adds the product to the user's wishlist if absent, removes it if
	// present, and reports whether the product ended up on the list.
	Toggle(ctx context.Context, userID, productID int64) (added bool, err error)

	// ListProductIDs retrieves the ids of every product on the user's
	// wishlist, oldest first.
	ListProductIDs(ctx context.Context, userID int64) ([]int64, error)
}
