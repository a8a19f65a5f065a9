package handlers

import (
	"net/http"

	"github.com/pravin4/trip-planner/internal/api/dto"
	"github.com/pravin4/trip-planner/internal/services"
)

type RoutesHandler struct {
	Routes []services.NamedRoute
}

// List returns the predefined scenic route table.
func (h *RoutesHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.NamedRouteResponse, 0, len(h.Routes))}
	for _, route := range h.Routes {
		stops := make([]dto.NamedStopResponse, 0, len(route.Stops))
		for _, s := range route.Stops {
			stops = append(stops, dto.NamedStopResponse{
				Name: s.Name,
				Coordinate: dto.CoordinateResponse{
					Lat: s.Coordinate.Lat,
					Lon: s.Coordinate.Lon,
				},
				PositionKm: s.PositionKm,
			})
		}

		res.Routes = append(res.Routes, dto.NamedRouteResponse{
			OriginContains:      route.OriginContains,
			DestinationContains: route.DestinationContains,
			Stops:               stops,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
