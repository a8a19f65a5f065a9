package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pravin4/trip-planner/internal/adapters/cache"
	"github.com/pravin4/trip-planner/internal/platform/db"
	"github.com/pravin4/trip-planner/internal/services"
)

// dbtool prepares the Postgres geocode cache: it creates the schema and
// warms the cache with the built-in fallback city table so first requests
// skip the network even with an empty cache.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := initSchema(ctx, pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if err := warmCache(ctx, pg); err != nil {
		log.Fatalf("cache warm failed: %v", err)
	}
	log.Println("Cache warmed.")
}

func initSchema(ctx context.Context, pg *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		place TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`
	_, err := pg.ExecContext(ctx, schema)
	return err
}

func warmCache(ctx context.Context, pg *sql.DB) error {
	gc := cache.NewSQLGeocodeCache(pg)

	seeded := 0
	for name, coord := range services.DefaultFallbackCoordinates() {
		if err := gc.Put(ctx, name, coord); err != nil {
			return err
		}
		seeded++
	}

	log.Printf("Seeded %d places.", seeded)
	return nil
}
