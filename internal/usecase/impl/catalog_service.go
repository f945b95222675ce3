package impl

import (
	"context"
	"log/slog"

	"mahsoulna/config"
	deliverycontext "mahsoulna/internal/delivery/context"
	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultHighlightLimit = 6

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo    repository.ProductRepository
	highlightLimit int
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	highlightLimit := defaultHighlightLimit
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.HighlightLimit > 0 {
		highlightLimit = params.Config.Catalog.HighlightLimit
	}

	return &catalogService{
		productRepo:    params.ProductRepo,
		highlightLimit: highlightLimit,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Categories retrieves every product category.
func (srv *catalogService) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ProductsByCategory retrieves the products of one category.
func (srv *catalogService) ProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		srv.log(ctx).Error("Failed to list products by category", slog.Int64("categoryID", categoryID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// Highlights retrieves a random selection of products for the home screen.
func (srv *catalogService) Highlights(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListRandom(ctx, srv.highlightLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to list highlighted products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list highlighted products")
	}

	return products, nil
}

// NewArrivals retrieves the most recently added products.
func (srv *catalogService) NewArrivals(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListRecentlyAdded(ctx, srv.highlightLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to list recently added products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recently added products")
	}

	return products, nil
}

// Search retrieves products whose name or brand matches the query.
func (srv *catalogService) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	products, err := srv.productRepo.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to search products", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// ProductsByIDs retrieves the catalog entries for the given ids.
func (srv *catalogService) ProductsByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByIDs(ctx, ids)
	if err != nil {
		srv.log(ctx).Error("Failed to list products by ids", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products by ids")
	}

	if len(products) == 0 {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "no products matched the given ids")
	}

	return products, nil
}
