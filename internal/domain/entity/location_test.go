package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFor_RoundsToSixDecimals(t *testing.T) {
	key := KeyFor(33.89379123456, 35.50177678901)

	assert.Equal(t, "33.893791", key.Latitude.String())
	assert.Equal(t, "35.501777", key.Longitude.String())
}

func TestKeyFor_NearbyPointsShareAKey(t *testing.T) {
	a := KeyFor(33.8937910, 35.5017770)
	b := KeyFor(33.8937912, 35.5017768)

	assert.Equal(t, a, b)
}

func TestKeyFor_DistantPointsDiffer(t *testing.T) {
	a := KeyFor(33.893791, 35.501777)
	b := KeyFor(33.893792, 35.501777)

	assert.NotEqual(t, a, b)
}

func TestLocation_Key_UsesStoredCoordinates(t *testing.T) {
	loc := &Location{Latitude: -33.8937915, Longitude: -35.5017765}

	key := loc.Key()

	assert.Equal(t, KeyFor(loc.Latitude, loc.Longitude), key)
}
