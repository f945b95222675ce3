package impl

import (
	"context"
	"testing"

	mockRepo "mahsoulna/internal/mocks/repository"
	"mahsoulna/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wishlistServiceFixtures holds all test dependencies for wishlist service tests.
type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)

	service := &wishlistService{
		wishlistRepo: wishlistRepo,
		logger:       discardLogger(),
	}

	return wishlistServiceFixtures{
		service:      service,
		wishlistRepo: wishlistRepo,
	}
}

func TestWishlistService_Toggle_Adds(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	fx.wishlistRepo.On("Toggle", ctx, int64(7), int64(31)).Return(true, nil)

	output, err := fx.service.Toggle(ctx, 7, 31)

	require.NoError(t, err)
	assert.True(t, output.Added)
}

func TestWishlistService_Toggle_Removes(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	fx.wishlistRepo.On("Toggle", ctx, int64(7), int64(31)).Return(false, nil)

	output, err := fx.service.Toggle(ctx, 7, 31)

	require.NoError(t, err)
	assert.False(t, output.Added)
}

func TestWishlistService_Toggle_RepositoryError(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	fx.wishlistRepo.On("Toggle", ctx, int64(7), int64(31)).Return(false, errors.New("connection reset"))

	output, err := fx.service.Toggle(ctx, 7, 31)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestWishlistService_ListProductIDs_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ids := []int64{31, 47}
	fx.wishlistRepo.On("ListProductIDs", ctx, int64(7)).Return(ids, nil)

	got, err := fx.service.ListProductIDs(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestWishlistService_ListProductIDs_EmptyWishlist(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	fx.wishlistRepo.On("ListProductIDs", ctx, int64(7)).Return([]int64{}, nil)

	got, err := fx.service.ListProductIDs(ctx, 7)

	require.NoError(t, err)
	assert.Empty(t, got)
}
