package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/joho/godotenv"

	"github.com/pravin4/trip-planner/internal/adapters/cache"
	"github.com/pravin4/trip-planner/internal/adapters/geocode"
	"github.com/pravin4/trip-planner/internal/adapters/places"
	"github.com/pravin4/trip-planner/internal/adapters/research"
	"github.com/pravin4/trip-planner/internal/api"
	"github.com/pravin4/trip-planner/internal/platform/db"
	"github.com/pravin4/trip-planner/internal/ports"
	"github.com/pravin4/trip-planner/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (geocoder, caches, places, research model)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	geocoderURL := getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	cachePath := getEnv("GEOCODE_CACHE_PATH", "data/geocode.db")

	geocodeCache, closeCache, err := openGeocodeCache(cachePath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	geocoder := geocode.NewNominatimGeocoder(geocoderURL, geocodeCache)

	resolver := services.NewLocationResolver(geocoder, services.DefaultFallbackCoordinates())
	routes := services.DefaultNamedRoutes()

	planner := &services.TripPlanner{
		Resolver: resolver,
		Stops:    services.NewStopPlanner(routes),
		Costs:    services.DefaultCostTables(),
		Places:   placeProvider(),
		Research: researchProvider(),
	}

	router := api.NewRouter(planner, routes)

	// Write timeout is generous: a cold-cache plan makes geocoder and
	// research calls before the first byte goes out.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openGeocodeCache prefers Postgres when DATABASE_URL is set and falls
// back to a local SQLite file otherwise.
func openGeocodeCache(sqlitePath string) (ports.GeocodeCache, func(), error) {
	if dbURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(dbURL) != "" {
		pg, err := db.Open(dbURL)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewSQLGeocodeCache(pg), func() { pg.Close() }, nil
	}

	sq, err := cache.OpenSQLiteGeocodeCache(sqlitePath)
	if err != nil {
		return nil, nil, err
	}
	return sq, func() { sq.Close() }, nil
}

func placeProvider() ports.PlaceProvider {
	baseURL := os.Getenv("PLACES_API_URL")
	if strings.TrimSpace(baseURL) == "" {
		return places.NewStaticPlaceProvider()
	}
	return places.NewHTTPPlaceProvider(baseURL, os.Getenv("PLACES_API_KEY"))
}

// researchProvider builds the LLM day planner when an API key is present.
// Without one the planner fills exploration days with free time.
func researchProvider() ports.DayPlanProvider {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Println("OPENAI_API_KEY not set; day research disabled")
		return nil
	}

	model, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		APIKey:  apiKey,
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	})
	if err != nil {
		log.Printf("research model init failed, day research disabled: %v", err)
		return nil
	}
	return research.NewLLMDayPlanner(model)
}
