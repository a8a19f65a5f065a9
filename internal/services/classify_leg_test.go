package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/geo"
)

// equatorPoint returns a point on the equator whose great-circle distance
// from (0,0) is km.
func equatorPoint(km float64) domain.Coordinate {
	return domain.Coordinate{Lat: 0, Lon: km / geo.EarthRadiusKm * 180 / math.Pi}
}

func TestClassifyLegModeBands(t *testing.T) {
	origin := domain.Coordinate{Lat: 0, Lon: 0}

	cases := []struct {
		name string
		km   float64
		want domain.Mode
	}{
		{"short drive", 50, domain.ModeDrive},
		{"just under multi-modal", 399.999, domain.ModeDrive},
		{"at multi-modal threshold", 400, domain.ModeMultiModal},
		{"just over multi-modal", 400.5, domain.ModeMultiModal},
		{"mid multi-modal", 600, domain.ModeMultiModal},
		{"just under fly", 799.999, domain.ModeMultiModal},
		{"at fly threshold", 800, domain.ModeFly},
		{"just over fly", 800.5, domain.ModeFly},
		{"long haul", 4000, domain.ModeFly},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			leg, err := ClassifyLeg(origin, equatorPoint(tc.km), "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, leg.Mode)
			assert.InDelta(t, tc.km, leg.DistanceKm, 0.1)
			assert.Empty(t, leg.OverrideMode)
		})
	}
}

func TestClassifyLegDistanceSymmetric(t *testing.T) {
	a := domain.Coordinate{Lat: 37.3382, Lon: -121.8863}
	b := domain.Coordinate{Lat: 40.0265, Lon: -124.0678}

	ab, err := ClassifyLeg(a, b, "")
	require.NoError(t, err)
	ba, err := ClassifyLeg(b, a, "")
	require.NoError(t, err)

	assert.InDelta(t, ab.DistanceKm, ba.DistanceKm, 1e-9)
	assert.Equal(t, ab.Mode, ba.Mode)
}

func TestClassifyLegOverrideWins(t *testing.T) {
	origin := domain.Coordinate{Lat: 0, Lon: 0}

	// A 50 km hop would classify as drive; the override replaces it.
	leg, err := ClassifyLeg(origin, equatorPoint(50), domain.ModeFly)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeFly, leg.Mode)
	assert.Equal(t, domain.ModeFly, leg.OverrideMode)
	assert.InDelta(t, 50, leg.DistanceKm, 0.1)
}

func TestClassifyLegUnknownOverride(t *testing.T) {
	origin := domain.Coordinate{Lat: 0, Lon: 0}

	_, err := ClassifyLeg(origin, equatorPoint(50), domain.Mode("teleport"))
	assert.Error(t, err)
}

func TestClassifyLegRejectsInvalidCoordinates(t *testing.T) {
	bad := domain.Coordinate{Lat: 97.5, Lon: 0}
	good := domain.Coordinate{Lat: 0, Lon: 0}

	_, err := ClassifyLeg(bad, good, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)

	_, err = ClassifyLeg(good, bad, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
}
