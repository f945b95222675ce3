package postgres

import (
	"context"

	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindByKey retrieves the location whose rounded coordinate pair equals the key.
func (repo *locationRepository) FindByKey(ctx context.Context, key entity.CoordinateKey) (*entity.Location, error) {
	var locM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("latitude_key = ? AND longitude_key = ?", key.Latitude, key.Longitude).
		First(&locM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by coordinate key")
	}

	return toLocationDomain(&locM), nil
}

// Resolve returns the id of the location row for the given point, inserting it
// when the rounded coordinate key is new. The insert uses ON CONFLICT DO
// NOTHING on the key's unique index, so when two checkouts race on the same
// point exactly one row is created and the loser re-selects the winner's row.
func (repo *locationRepository) Resolve(ctx context.Context, location *entity.Location) (int64, error) {
	key := location.Key()

	locM := model.LocationModel{
		Latitude:     location.Latitude,
		Longitude:    location.Longitude,
		LatitudeKey:  key.Latitude,
		LongitudeKey: key.Longitude,
		Address:      location.Address,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "latitude_key"}, {Name: "longitude_key"}},
			DoNothing: true,
		}).
		Create(&locM)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert location")
	}

	if result.RowsAffected > 0 {
		location.ID = locM.ID
		location.CreatedAt = locM.CreatedAt

		return locM.ID, nil
	}

	// The key already existed. Fetch the surviving row.
	existing, err := repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return 0, domainerrors.ErrInternalError.WrapMessage("location vanished after conflicting insert")
		}

		return 0, err
	}

	location.ID = existing.ID
	location.CreatedAt = existing.CreatedAt

	return existing.ID, nil
}

// toLocationDomain maps the GORM model to the pure domain entity.
func toLocationDomain(locM *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:        locM.ID,
		Latitude:  locM.Latitude,
		Longitude: locM.Longitude,
		Address:   locM.Address,
		CreatedAt: locM.CreatedAt,
	}
}
