package domain

// Travel mode for a journey leg.
type Mode string

const (
	ModeDrive      Mode = "drive"
	ModeMultiModal Mode = "multi_modal"
	ModeFly        Mode = "fly"
)

// Valid reports whether m is one of the known travel modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeDrive, ModeMultiModal, ModeFly:
		return true
	}
	return false
}

// Leg is a single origin-to-destination journey segment.
// Mode holds the effective mode: derived from distance unless OverrideMode
// was supplied, in which case OverrideMode wins and is recorded as well.
// A Leg is immutable planning data once classified.
type Leg struct {
	Origin       Coordinate
	Destination  Coordinate
	DistanceKm   float64
	Mode         Mode
	OverrideMode Mode // empty when the mode was derived
}
