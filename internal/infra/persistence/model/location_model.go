package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
//
// Latitude/Longitude carry the coordinates exactly as the client reported
// them. LatitudeKey/LongitudeKey hold the same point rounded to 6 decimal
// places; their composite unique index makes the rounded pair the natural key,
// so two concurrent inserts for the same delivery point collapse to one row.
type LocationModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Latitude     float64         `gorm:"type:double precision;not null"`
	Longitude    float64         `gorm:"type:double precision;not null"`
	LatitudeKey  decimal.Decimal `gorm:"type:numeric(9,6);not null;uniqueIndex:idx_locations_coordinate_key"`
	LongitudeKey decimal.Decimal `gorm:"type:numeric(9,6);not null;uniqueIndex:idx_locations_coordinate_key"`
	Address      string          `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
