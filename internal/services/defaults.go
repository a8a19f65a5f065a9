package services

import "github.com/pravin4/trip-planner/internal/domain"

// Known abbreviations expanded during input normalization. Matching is
// against the whole (upper-cased) input, not substrings.
var knownAbbreviations = map[string]string{
	"SF":     "San Francisco",
	"NYC":    "New York City",
	"LA":     "Los Angeles",
	"DC":     "Washington DC",
	"VEGAS":  "Las Vegas",
	"PHILLY": "Philadelphia",
}

// DefaultFallbackCoordinates returns the static coordinate table for
// well-known US cities, used when the geocoding provider fails.
func DefaultFallbackCoordinates() map[string]domain.Coordinate {
	return map[string]domain.Coordinate{
		"San Francisco":   {Lat: 37.7749, Lon: -122.4194},
		"New York City":   {Lat: 40.7128, Lon: -74.0060},
		"Los Angeles":     {Lat: 34.0522, Lon: -118.2437},
		"Chicago":         {Lat: 41.8781, Lon: -87.6298},
		"Miami":           {Lat: 25.7617, Lon: -80.1918},
		"Seattle":         {Lat: 47.6062, Lon: -122.3321},
		"Denver":          {Lat: 39.7392, Lon: -104.9903},
		"Austin":          {Lat: 30.2672, Lon: -97.7431},
		"Nashville":       {Lat: 36.1627, Lon: -86.7816},
		"New Orleans":     {Lat: 29.9511, Lon: -90.0715},
		"Portland":        {Lat: 45.5152, Lon: -122.6784},
		"San Diego":       {Lat: 32.7157, Lon: -117.1611},
		"Las Vegas":       {Lat: 36.1699, Lon: -115.1398},
		"Phoenix":         {Lat: 33.4484, Lon: -112.0740},
		"Dallas":          {Lat: 32.7767, Lon: -96.7970},
		"Houston":         {Lat: 29.7604, Lon: -95.3698},
		"Atlanta":         {Lat: 33.7490, Lon: -84.3880},
		"Boston":          {Lat: 42.3601, Lon: -71.0589},
		"Philadelphia":    {Lat: 39.9526, Lon: -75.1652},
		"Washington DC":   {Lat: 38.9072, Lon: -77.0369},
		"San Jose":        {Lat: 37.3382, Lon: -121.8863},
		"Shelter Cove":    {Lat: 40.0265, Lon: -124.0678},
		"Monterey":        {Lat: 36.6002, Lon: -121.8947},
		"Big Sur":         {Lat: 36.2704, Lon: -121.8081},
		"Santa Barbara":   {Lat: 34.4208, Lon: -119.6982},
		"Carmel":          {Lat: 36.5552, Lon: -121.9233},
		"Santa Cruz":      {Lat: 36.9741, Lon: -122.0308},
		"Lake Tahoe":      {Lat: 39.0968, Lon: -120.0324},
		"Napa":            {Lat: 38.2975, Lon: -122.2869},
		"Yosemite":        {Lat: 37.8651, Lon: -119.5383},
		"Oakland":         {Lat: 37.8044, Lon: -122.2712},
		"San Luis Obispo": {Lat: 35.2828, Lon: -120.6596},
	}
}

// DefaultNamedRoutes returns the predefined scenic-stop table for popular
// origin/destination pairs. The first matching route in table order wins,
// so specific pairs are listed before broader patterns.
func DefaultNamedRoutes() []NamedRoute {
	return []NamedRoute{
		{
			OriginContains:      []string{"san jose"},
			DestinationContains: []string{"shelter cove"},
			Stops: []NamedStop{
				{
					Name:       "San Francisco",
					Coordinate: domain.Coordinate{Lat: 37.7749, Lon: -122.4194},
					PositionKm: 80,
				},
				{
					Name:       "Monterey",
					Coordinate: domain.Coordinate{Lat: 36.6002, Lon: -121.8947},
					PositionKm: 280,
				},
				{
					Name:       "Big Sur",
					Coordinate: domain.Coordinate{Lat: 36.2704, Lon: -121.8081},
					PositionKm: 400,
				},
			},
		},
		{
			OriginContains:      []string{"san jose"},
			DestinationContains: []string{"big sur"},
			Stops: []NamedStop{
				{
					Name:       "Monterey",
					Coordinate: domain.Coordinate{Lat: 36.6002, Lon: -121.8947},
					PositionKm: 200,
				},
			},
		},
		{
			OriginContains:      []string{"san jose", "san francisco", "oakland"},
			DestinationContains: []string{"monterey", "carmel", "big sur", "santa barbara"},
			Stops: []NamedStop{
				{
					Name:       "Monterey",
					Coordinate: domain.Coordinate{Lat: 36.6002, Lon: -121.8947},
					PositionKm: 160,
				},
			},
		},
	}
}
