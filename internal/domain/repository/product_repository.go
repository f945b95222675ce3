// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mahsoulna/internal/domain/entity"
)

// ProductRepository defines the read-side catalog operations. The storefront
// never mutates the catalog; products are managed by an external back office.
type ProductRepository interface {
	// ListCategories retrieves every category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListByCategory retrieves the products of one category.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)

	// ListRandom retrieves up to limit products in random order.
	ListRandom(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListRecentlyAdded retrieves up to limit products, newest first.
	ListRecentlyAdded(ctx context.Context, limit int) ([]*entity.Product, error)

	// Search retrieves products whose name or brand contains the query,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]*entity.Product, error)

	// ListByIDs retrieves the products matching any of the given ids.
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
}
