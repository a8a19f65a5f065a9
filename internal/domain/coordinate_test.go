package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateValidate(t *testing.T) {
	cases := []struct {
		name  string
		coord Coordinate
		ok    bool
	}{
		{"valid", Coordinate{Lat: 37.33, Lon: -121.88}, true},
		{"lat north pole", Coordinate{Lat: 90, Lon: 0}, true},
		{"lat south pole", Coordinate{Lat: -90, Lon: 0}, true},
		{"lon date line", Coordinate{Lat: 0, Lon: 180}, true},
		{"lat too big", Coordinate{Lat: 90.1, Lon: 0}, false},
		{"lat too small", Coordinate{Lat: -90.1, Lon: 0}, false},
		{"lon too big", Coordinate{Lat: 0, Lon: 180.1}, false},
		{"lon too small", Coordinate{Lat: 0, Lon: -180.1}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.coord.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestModeValid(t *testing.T) {
	assert.True(t, ModeDrive.Valid())
	assert.True(t, ModeMultiModal.Valid())
	assert.True(t, ModeFly.Valid())
	assert.False(t, Mode("").Valid())
	assert.False(t, Mode("teleport").Valid())
}
