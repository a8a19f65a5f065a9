package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/ports"
)

type countingGeocoder struct {
	entries map[string]domain.Coordinate
	calls   int
}

func (g *countingGeocoder) Geocode(_ context.Context, text string) (domain.Coordinate, error) {
	g.calls++
	if c, ok := g.entries[text]; ok {
		return c, nil
	}
	return domain.Coordinate{}, ports.ErrNotFound
}

func TestResolvePrefersGeocoder(t *testing.T) {
	geocoder := &countingGeocoder{entries: map[string]domain.Coordinate{
		"San Jose": {Lat: 37.3382, Lon: -121.8863},
	}}
	resolver := NewLocationResolver(geocoder, map[string]domain.Coordinate{
		"San Jose": {Lat: 1, Lon: 1}, // should not be consulted
	})

	c, err := resolver.Session().Resolve(context.Background(), "San Jose")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 37.3382, Lon: -121.8863}, c)
}

func TestResolveFallsBackOnGeocoderMiss(t *testing.T) {
	resolver := NewLocationResolver(&countingGeocoder{}, map[string]domain.Coordinate{
		"Shelter Cove": {Lat: 40.0265, Lon: -124.0678},
	})

	c, err := resolver.Session().Resolve(context.Background(), "Shelter Cove")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 40.0265, Lon: -124.0678}, c)
}

func TestResolveDoubleMissFails(t *testing.T) {
	resolver := NewLocationResolver(&countingGeocoder{}, nil)

	_, err := resolver.Session().Resolve(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrUnresolvableLocation)
}

func TestResolveEmptyNameFails(t *testing.T) {
	resolver := NewLocationResolver(&countingGeocoder{}, nil)

	_, err := resolver.Session().Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrUnresolvableLocation)
}

func TestResolveExpandsAbbreviations(t *testing.T) {
	geocoder := &countingGeocoder{entries: map[string]domain.Coordinate{
		"San Francisco": {Lat: 37.7749, Lon: -122.4194},
	}}
	resolver := NewLocationResolver(geocoder, nil)

	c, err := resolver.Session().Resolve(context.Background(), "sf")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 37.7749, Lon: -122.4194}, c)
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	resolver := NewLocationResolver(nil, nil)

	assert.Equal(t, "San Jose", resolver.Normalize("  San   Jose  "))
	assert.Equal(t, "New York City", resolver.Normalize("nyc"))
	assert.Equal(t, "", resolver.Normalize("   "))
}

func TestResolveSessionMemoizes(t *testing.T) {
	geocoder := &countingGeocoder{entries: map[string]domain.Coordinate{
		"San Jose": {Lat: 37.3382, Lon: -121.8863},
	}}
	resolver := NewLocationResolver(geocoder, nil)
	session := resolver.Session()

	for i := 0; i < 3; i++ {
		_, err := session.Resolve(context.Background(), "San Jose")
		require.NoError(t, err)
	}
	// Distinct spellings of the same normalized name share one lookup.
	_, err := session.Resolve(context.Background(), "  San  Jose ")
	require.NoError(t, err)

	assert.Equal(t, 1, geocoder.calls)

	// A fresh session re-resolves.
	_, err = resolver.Session().Resolve(context.Background(), "San Jose")
	require.NoError(t, err)
	assert.Equal(t, 2, geocoder.calls)
}

func TestResolveFallbackMatchesCaseInsensitively(t *testing.T) {
	resolver := NewLocationResolver(nil, DefaultFallbackCoordinates())

	c, err := resolver.Session().Resolve(context.Background(), "shelter cove")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 40.0265, Lon: -124.0678}, c)
}
