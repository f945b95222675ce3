// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mahsoulna/internal/domain/entity"
)

// ErrLocationNotFound is returned when no location matches a coordinate key.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines persistence for delivery locations. Locations are
// append-only and deduplicated by their rounded coordinate key.
type LocationRepository interface {
	// FindByKey retrieves the location whose rounded coordinates equal the key.
	// Returns ErrLocationNotFound when no such location exists.
	FindByKey(ctx context.Context, key entity.CoordinateKey) (*entity.Location, error)

	// Resolve returns the id of the location for the given point, creating the
	// row when the rounded coordinate key has never been seen. The stored row
	// keeps the original unrounded latitude/longitude; only the key columns are
	// rounded. Concurrent resolvers for the same key converge on a single row
	// via the key's uniqueness constraint.
	Resolve(ctx context.Context, location *entity.Location) (int64, error)
}
