// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Orders never reference products directly; the
// cart snapshot copies the fields it needs, so catalog edits and deletions
// cannot corrupt order history.
type Product struct {
	ID         int64
	CategoryID int64
	Name       string
	Brand      string
	Price      decimal.Decimal
	ImagePath  string
	AddedAt    time.Time
}

// Category groups catalog items for browsing.
type Category struct {
	ID        int64
	Name      string
	ImagePath string
}

// WishlistItem links a user to a product they have saved for later.
// The (UserID, ProductID) pair is the natural key: a product is either on a
// user's wishlist or not, never listed twice.
type WishlistItem struct {
	UserID    int64
	ProductID int64
	CreatedAt time.Time
}
