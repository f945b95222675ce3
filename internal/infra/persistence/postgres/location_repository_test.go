package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var locationColumns = []string{
	"id", "latitude", "longitude", "latitude_key", "longitude_key", "address", "created_at",
}

func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestLocationRepository_Resolve_InsertsNewPoint(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "locations"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	location := &entity.Location{Latitude: 33.8937912, Longitude: 35.5017767, Address: "Hamra Street"}
	id, err := repo.Resolve(context.Background(), location)

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(42), location.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A second resolver whose insert hits the unique coordinate key gets zero rows
// back and must return the id of the row the first resolver created.
func TestLocationRepository_Resolve_ConflictReusesExistingRow(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewLocationRepository(db)

	key := entity.KeyFor(33.8937912, 35.5017767)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "locations"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations"`)).
		WithArgs(key.Latitude, key.Longitude, 1).
		WillReturnRows(sqlmock.NewRows(locationColumns).
			AddRow(int64(7), 33.8937889, 35.5017792, "33.893789", "35.501779", "Hamra Street", time.Now()))

	// Rounds to the same key as the stored row but differs past 6 decimals.
	location := &entity.Location{Latitude: 33.8937912, Longitude: 35.5017767, Address: "Hamra Street, floor 2"}
	id, err := repo.Resolve(context.Background(), location)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(7), location.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_Resolve_VanishedAfterConflict(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "locations"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations"`)).
		WillReturnRows(sqlmock.NewRows(locationColumns))

	location := &entity.Location{Latitude: 33.8937912, Longitude: 35.5017767}
	_, err := repo.Resolve(context.Background(), location)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestLocationRepository_FindByKey_NotFound(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations"`)).
		WillReturnRows(sqlmock.NewRows(locationColumns))

	_, err := repo.FindByKey(context.Background(), entity.KeyFor(33.8937912, 35.5017767))

	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}
