package geo

import (
	"github.com/golang/geo/s2"

	"github.com/pravin4/trip-planner/internal/domain"
)

// Mean Earth radius in kilometers, matching the haversine convention.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers.
func DistanceKm(a, b domain.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// Interpolate returns the point at fraction t along the straight lat/lon
// line from a to b. This is deliberately not a road path: waypoint placement
// only needs an evenly spaced approximation of the leg.
func Interpolate(a, b domain.Coordinate, t float64) domain.Coordinate {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return domain.Coordinate{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lon: a.Lon + (b.Lon-a.Lon)*t,
	}
}
