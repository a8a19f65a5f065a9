package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pravin4/trip-planner/internal/domain"
)

// SQLGeocodeCache is a Postgres-backed cache mapping place names to
// coordinates. Keys are folded to lower case so warmed entries match
// lookups regardless of input casing.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

func (s *SQLGeocodeCache) Get(ctx context.Context, name string) (domain.Coordinate, bool, error) {
	if s.DB == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: db is nil")
	}

	name = cacheKey(name)
	if name == "" {
		return domain.Coordinate{}, false, nil
	}

	q := `
	SELECT lat, lon
	FROM geocode_cache
	WHERE place = $1;
	`

	var lat, lon float64
	err := s.DB.QueryRowContext(ctx, q, name).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache %q: %w", name, err)
	}

	return domain.Coordinate{Lat: lat, Lon: lon}, true, nil
}

func (s *SQLGeocodeCache) Put(ctx context.Context, name string, c domain.Coordinate) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	name = cacheKey(name)
	if name == "" {
		return errors.New("put geocode cache: empty place key")
	}

	q := `
	INSERT INTO geocode_cache (place, lat, lon)
	VALUES ($1, $2, $3)
	ON CONFLICT (place) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`

	if _, err := s.DB.ExecContext(ctx, q, name, c.Lat, c.Lon); err != nil {
		return fmt.Errorf("put geocode cache %q: %w", name, err)
	}

	return nil
}

// cacheKey folds a place name to its canonical cache key. The fallback
// table matches case-insensitively, so the cache must too.
func cacheKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
