package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pravin4/trip-planner/internal/domain"
)

// SQLiteGeocodeCache is a file-backed cache for single-process
// deployments where Postgres is not available.
type SQLiteGeocodeCache struct {
	DB *sql.DB
}

// OpenSQLiteGeocodeCache opens (or creates) the database at path and
// ensures the cache table exists.
func OpenSQLiteGeocodeCache(path string) (*SQLiteGeocodeCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite geocode cache: %w", err)
	}

	// modernc.org/sqlite does not support concurrent writers on one handle.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		place TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite geocode cache schema: %w", err)
	}

	return &SQLiteGeocodeCache{DB: db}, nil
}

func (s *SQLiteGeocodeCache) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func (s *SQLiteGeocodeCache) Get(ctx context.Context, name string) (domain.Coordinate, bool, error) {
	if s.DB == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: db is nil")
	}

	name = cacheKey(name)
	if name == "" {
		return domain.Coordinate{}, false, nil
	}

	q := `SELECT lat, lon FROM geocode_cache WHERE place = ?;`

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

func (s *SQLiteGeocodeCache) Put(ctx context.Context, name string, c domain.Coordinate) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	name = cacheKey(name)
	if name == "" {
		return errors.New("put geocode cache: empty place key")
	}

	q := `INSERT OR REPLACE INTO geocode_cache (place, lat, lon) VALUES (?, ?, ?);`

	if _, err := s.DB.ExecContext(ctx, q, name, c.Lat, c.Lon); err != nil {
		return fmt.Errorf("put geocode cache %q: %w", name, err)
	}

	return nil
}
