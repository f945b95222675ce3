package usecase

import (
	"context"

	"mahsoulna/internal/domain/entity"
)

// CatalogUsecase defines the read-only browsing operations of the store.
type CatalogUsecase interface {
	// Categories retrieves every product category.
	Categories(ctx context.Context) ([]*entity.Category, error)

	// ProductsByCategory retrieves the products of one category.
	ProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)

	// Highlights retrieves a random selection of products for the home screen.
	Highlights(ctx context.Context) ([]*entity.Product, error)

	// NewArrivals retrieves the most recently added products.
	NewArrivals(ctx context.Context) ([]*entity.Product, error)

	// Search retrieves products whose name or brand matches the query.
	Search(ctx context.Context, query string) ([]*entity.Product, error)

	// ProductsByIDs retrieves the catalog entries for the given ids. Returns
	// ErrProductNotFound when none of the ids match a product.
	ProductsByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
}
