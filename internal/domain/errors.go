package domain

import "errors"

var (
	// Neither the geocoding provider nor the fallback table knows the place.
	ErrUnresolvableLocation = errors.New("unresolvable location")

	// Latitude or longitude outside the valid range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// The research collaborator produced no usable content for a day.
	// Recoverable: callers substitute a free-time day instead of failing.
	ErrMissingDayPlanData = errors.New("missing day plan data")
)
