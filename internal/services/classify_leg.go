package services

import (
	"fmt"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/geo"
)

// Mode thresholds in kilometers. Lower bound inclusive, upper exclusive:
// < 400 drive, [400, 800) multi_modal, >= 800 fly.
const (
	multiModalThresholdKm = 400.0
	flyThresholdKm        = 800.0
)

// ClassifyLeg computes the great-circle distance between origin and
// destination and derives the travel mode from the distance thresholds.
// A supplied override replaces the derived mode unconditionally; the
// distance is recorded either way.
func ClassifyLeg(origin, destination domain.Coordinate, override domain.Mode) (domain.Leg, error) {
	if err := origin.Validate(); err != nil {
		return domain.Leg{}, fmt.Errorf("classify leg: origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return domain.Leg{}, fmt.Errorf("classify leg: destination: %w", err)
	}

	distance := geo.DistanceKm(origin, destination)

	mode := domain.ModeDrive
	switch {
	case distance >= flyThresholdKm:
		mode = domain.ModeFly
	case distance >= multiModalThresholdKm:
		mode = domain.ModeMultiModal
	}

	leg := domain.Leg{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  distance,
		Mode:        mode,
	}

	if override != "" {
		if !override.Valid() {
			return domain.Leg{}, fmt.Errorf("classify leg: unknown override mode %q", override)
		}
		leg.Mode = override
		leg.OverrideMode = override
	}

	return leg, nil
}
