package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/ports"
)

// HTTPPlaceProvider queries a places search endpoint for points of
// interest near a coordinate. The endpoint is expected to return a JSON
// array of {name, lat, lon, category} objects.
type HTTPPlaceProvider struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewHTTPPlaceProvider(baseURL, apiKey string) *HTTPPlaceProvider {
	return &HTTPPlaceProvider{
		session: &http.Client{Timeout: 8 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type placeResult struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Category string  `json:"category"`
}

func (p *HTTPPlaceProvider) Nearby(ctx context.Context, c domain.Coordinate, radiusKm float64) ([]ports.Place, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.Lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(c.Lon, 'f', 6, 64))
	q.Set("radius_km", strconv.FormatFloat(radiusKm, 'f', 1, 64))
	if p.apiKey != "" {
		q.Set("key", p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/nearby?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build places request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("places request: unexpected status %d", resp.StatusCode)
	}

	var results []placeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	out := make([]ports.Place, 0, len(results))
	for _, r := range results {
		if r.Name == "" {
			continue
		}
		out = append(out, ports.Place{
			Name:       r.Name,
			Coordinate: domain.Coordinate{Lat: r.Lat, Lon: r.Lon},
			Category:   r.Category,
		})
	}
	return out, nil
}
