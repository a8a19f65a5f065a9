package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/platform/obs"
	"github.com/pravin4/trip-planner/internal/ports"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder implements ports.Geocoder against the OpenStreetMap
// Nominatim search endpoint.
//
// It coordinates:
//   - Persistent geocode caching (optional)
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	cache     ports.GeocodeCache
}

func NewNominatimGeocoder(baseURL string, cache ports.GeocodeCache) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
		userAgent: "trip-planner/1.0",
		cache:     cache,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a place name, consulting the cache before the network.
func (g *NominatimGeocoder) Geocode(ctx context.Context, text string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	if text == "" {
		return domain.Coordinate{}, errors.New("geocode: text must be non-empty")
	}

	if g.cache != nil {
		if c, ok, cerr := g.cache.Get(ctx, text); cerr == nil && ok {
			return c, nil
		}
	}

	endpoint := g.baseURL + "/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", text)
		q.Set("format", "json")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: execute request: %w", text, err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: decode response: %w", text, err)
	}

	if len(decoded) == 0 {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", text, ports.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: parse lat: %w", text, err)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: parse lon: %w", text, err)
	}

	coord := domain.Coordinate{Lat: lat, Lon: lon}

	if g.cache != nil {
		if cerr := g.cache.Put(ctx, text, coord); cerr != nil {
			obs.Warn(ctx, "geocode cache put %q: %v", text, cerr)
		}
	}

	return coord, nil
}

func (g *NominatimGeocoder) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}
