package postgres

import (
	"context"

	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the domain.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Toggle adds the product to the user's wishlist if absent, removes it if
// present. The conditional insert leans on the composite primary key: when a
// concurrent toggle already inserted the pair, the conflict clause turns this
// insert into a no-op and the pair is deleted instead.
func (repo *wishlistRepository) Toggle(ctx context.Context, userID, productID int64) (bool, error) {
	itemM := model.WishlistModel{
		UserID:    userID,
		ProductID: productID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "wishlist_item_id"}},
			DoNothing: true,
		}).
		Create(&itemM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add wishlist item")
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	// The pair already existed, so this toggle removes it.
	del := repo.db.WithContext(ctx).
		Where("user_id = ? AND wishlist_item_id = ?", userID, productID).
		Delete(&model.WishlistModel{})
	if del.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(del.Error, "failed to remove wishlist item")
	}

	return false, nil
}

// ListProductIDs retrieves the ids of every product on the user's wishlist,
// oldest first.
func (repo *wishlistRepository) ListProductIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistModel{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("wishlist_item_id", &ids).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishlist items")
	}

	if ids == nil {
		ids = []int64{}
	}

	return ids, nil
}
