package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pravin4/trip-planner/internal/api/handlers"
	"github.com/pravin4/trip-planner/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(planner *services.TripPlanner, routes []services.NamedRoute) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{
		Planner:  planner,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	routesHandler := &handlers.RoutesHandler{Routes: routes}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/plan", planHandler.Plan)
	mux.HandleFunc("/routes", routesHandler.List)

	return loggingMiddleware(mux)
}
