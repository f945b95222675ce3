package postgres

import (
	"context"

	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
// The storefront is read-only on the catalog tables.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// ListCategories retrieves every category.
func (repo *productRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&categoryMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, &entity.Category{
			ID:        categoryMs[i].ID,
			Name:      categoryMs[i].Name,
			ImagePath: categoryMs[i].ImagePath,
		})
	}

	return categories, nil
}

// ListByCategory retrieves the products of one category.
func (repo *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&productMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products by category")
	}

	return toProductDomains(productMs), nil
}

// ListRandom retrieves up to limit products in random order.
func (repo *productRepository) ListRandom(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Order("RANDOM()").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list random products")
	}

	return toProductDomains(productMs), nil
}

// ListRecentlyAdded retrieves up to limit products, newest first.
func (repo *productRepository) ListRecentlyAdded(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Order("added_at DESC").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recently added products")
	}

	return toProductDomains(productMs), nil
}

// Search retrieves products whose name or brand contains the query,
// case-insensitively.
func (repo *productRepository) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	pattern := "%" + query + "%"

	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("name ILIKE ? OR product_brand ILIKE ?", pattern, pattern).
		Order("id").
		Find(&productMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search products")
	}

	return toProductDomains(productMs), nil
}

// ListByIDs retrieves the products matching any of the given ids.
func (repo *productRepository) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&productMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products by ids")
	}

	return toProductDomains(productMs), nil
}

func toProductDomains(productMs []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products
}

// toProductDomain maps the GORM model to the pure domain entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:         productM.ID,
		CategoryID: productM.CategoryID,
		Name:       productM.Name,
		Brand:      productM.Brand,
		Price:      productM.Price,
		ImagePath:  productM.ImagePath,
		AddedAt:    productM.AddedAt,
	}
}
