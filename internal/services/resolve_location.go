package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/ports"
)

// LocationResolver turns free-text place names into coordinates.
//
// Resolution policy: external geocoder first; on any failure (timeout,
// no-result, error) the injected fallback table is consulted by normalized
// name; when both miss the resolution fails with ErrUnresolvableLocation.
// The resolver itself is stateless and safe for concurrent use; per-request
// memoization lives in a Session.
type LocationResolver struct {
	geocoder      ports.Geocoder
	fallback      map[string]domain.Coordinate
	abbreviations map[string]string
}

func NewLocationResolver(geocoder ports.Geocoder, fallback map[string]domain.Coordinate) *LocationResolver {
	fb := make(map[string]domain.Coordinate, len(fallback))
	for name, c := range fallback {
		fb[strings.ToLower(strings.TrimSpace(name))] = c
	}
	return &LocationResolver{
		geocoder:      geocoder,
		fallback:      fb,
		abbreviations: knownAbbreviations,
	}
}

// Normalize trims and collapses whitespace and expands a fixed set of known
// abbreviations. Pure string transform, no network effect.
func (r *LocationResolver) Normalize(name string) string {
	cleaned := strings.Join(strings.Fields(name), " ")
	if full, ok := r.abbreviations[strings.ToUpper(cleaned)]; ok {
		return full
	}
	return cleaned
}

// Session returns a request-scoped resolver that resolves each distinct
// string at most once. Sessions are not safe for concurrent use.
func (r *LocationResolver) Session() *ResolveSession {
	return &ResolveSession{resolver: r, memo: make(map[string]domain.Coordinate)}
}

type ResolveSession struct {
	resolver *LocationResolver
	memo     map[string]domain.Coordinate
}

// Resolve maps a free-text place name to a coordinate.
func (s *ResolveSession) Resolve(ctx context.Context, name string) (domain.Coordinate, error) {
	norm := s.resolver.Normalize(name)
	if norm == "" {
		return domain.Coordinate{}, fmt.Errorf("resolve location: empty name: %w", domain.ErrUnresolvableLocation)
	}

	if c, ok := s.memo[norm]; ok {
		return c, nil
	}

	c, err := s.resolver.lookup(ctx, norm)
	if err != nil {
		return domain.Coordinate{}, err
	}

	s.memo[norm] = c
	return c, nil
}

func (r *LocationResolver) lookup(ctx context.Context, norm string) (domain.Coordinate, error) {
	if r.geocoder != nil {
		c, err := r.geocoder.Geocode(ctx, norm)
		if err == nil {
			if verr := c.Validate(); verr != nil {
				return domain.Coordinate{}, fmt.Errorf("resolve location %q: provider result: %w", norm, verr)
			}
			return c, nil
		}
		// Timeouts, no-result and provider errors all degrade to the
		// static table; only a double miss is fatal.
	}

	if c, ok := r.fallback[strings.ToLower(norm)]; ok {
		return c, nil
	}

	return domain.Coordinate{}, fmt.Errorf("resolve location %q: %w", norm, domain.ErrUnresolvableLocation)
}
