package postgres

import (
	"context"

	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// avatarRepository implements the domain.AvatarRepository interface using GORM.
type avatarRepository struct {
	db *gorm.DB
}

// NewAvatarRepository is the constructor for avatarRepository.
func NewAvatarRepository(db *gorm.DB) repository.AvatarRepository {
	return &avatarRepository{db: db}
}

// ListAvatars retrieves every stock avatar, in insertion order.
func (repo *avatarRepository) ListAvatars(ctx context.Context) ([]*entity.Avatar, error) {
	var avatarMs []model.AvatarModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&avatarMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list avatars")
	}

	avatars := make([]*entity.Avatar, 0, len(avatarMs))
	for i := range avatarMs {
		avatars = append(avatars, &entity.Avatar{
			ID:    avatarMs[i].ID,
			Image: avatarMs[i].Image,
		})
	}

	return avatars, nil
}
