package domain

import "fmt"

// Immutable geographic coordinate (latitude, longitude) in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Validate checks the coordinate is within the valid lat/lon ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90,90]: %w", c.Lat, ErrInvalidCoordinate)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %f out of range [-180,180]: %w", c.Lon, ErrInvalidCoordinate)
	}
	return nil
}
