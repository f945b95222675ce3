// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CoordinatePrecision is the number of decimal places used when treating a
// latitude/longitude pair as a delivery-location natural key. Six decimal
// places is roughly 11cm of ground distance, well below delivery accuracy.
const CoordinatePrecision = 6

// Location is a geocoded delivery point. Rows are append-only: once a rounded
// coordinate pair has been stored it is reused by every later order that
// resolves to the same pair, and never updated or deleted.
type Location struct {
	ID        int64
	Latitude  float64   // The latitude exactly as the client reported it.
	Longitude float64   // The longitude exactly as the client reported it.
	Address   string    // Free-text address, may be empty.
	CreatedAt time.Time // Timestamp of the first order that used this point.
}

// CoordinateKey is the rounded latitude/longitude pair that identifies a
// delivery location. Two points that round to the same key are the same
// location as far as order delivery is concerned.
type CoordinateKey struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
}

// KeyFor rounds a raw coordinate pair to the location natural key.
func KeyFor(latitude, longitude float64) CoordinateKey {
	return CoordinateKey{
		Latitude:  decimal.NewFromFloat(latitude).Round(CoordinatePrecision),
		Longitude: decimal.NewFromFloat(longitude).Round(CoordinatePrecision),
	}
}

// Key returns the natural key of this location's stored coordinates.
func (l *Location) Key() CoordinateKey {
	return KeyFor(l.Latitude, l.Longitude)
}
