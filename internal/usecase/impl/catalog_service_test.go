package impl

import (
	"context"
	"testing"

	"mahsoulna/config"
	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	mockRepo "mahsoulna/internal/mocks/repository"
	"mahsoulna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T, highlightLimit int) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Config:      &config.Config{Catalog: &config.CatalogConfig{HighlightLimit: highlightLimit}},
		Logger:      discardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_Highlights_UsesConfiguredLimit(t *testing.T) {
	fx := createTestCatalogService(t, 12)

	ctx := context.Background()
	products := []*entity.Product{{ID: 1}, {ID: 2}}

	fx.productRepo.On("ListRandom", ctx, 12).Return(products, nil)

	got, err := fx.service.Highlights(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_Highlights_DefaultLimitWhenUnset(t *testing.T) {
	fx := createTestCatalogService(t, 0)

	ctx := context.Background()
	fx.productRepo.On("ListRandom", ctx, defaultHighlightLimit).Return([]*entity.Product{}, nil)

	_, err := fx.service.Highlights(ctx)

	require.NoError(t, err)
}

func TestCatalogService_Search_Success(t *testing.T) {
	fx := createTestCatalogService(t, 12)

	ctx := context.Background()
	products := []*entity.Product{{ID: 31, Name: "Olive Oil 1L"}}

	fx.productRepo.On("Search", ctx, "olive").Return(products, nil)

	got, err := fx.service.Search(ctx, "olive")

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_ProductsByIDs_NoneFound(t *testing.T) {
	fx := createTestCatalogService(t, 12)

	ctx := context.Background()
	fx.productRepo.On("ListByIDs", ctx, []int64{998, 999}).Return([]*entity.Product{}, nil)

	got, err := fx.service.ProductsByIDs(ctx, []int64{998, 999})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
