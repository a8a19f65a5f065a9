package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pravin4/trip-planner/internal/api/dto"
	"github.com/pravin4/trip-planner/internal/domain"
	"github.com/pravin4/trip-planner/internal/platform/obs"
	"github.com/pravin4/trip-planner/internal/services"
)

type PlanHandler struct {
	Planner  *services.TripPlanner
	Validate *validator.Validate
}

// Plan runs one planning request through the pipeline and returns the
// finished itinerary.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	start, end, err := req.Dates()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "dates must use YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		writeError(w, r, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

	groupSize := req.GroupSize
	if groupSize == 0 {
		groupSize = 2
	}
	budgetLevel := domain.BudgetLevel(req.BudgetLevel)
	if budgetLevel == "" {
		budgetLevel = domain.BudgetLevelModerate
	}

	svcReq := services.PlanTripRequest{
		Origin:       strings.TrimSpace(req.Origin),
		Destination:  strings.TrimSpace(req.Destination),
		StartDate:    start,
		EndDate:      end,
		GroupSize:    groupSize,
		BudgetLevel:  budgetLevel,
		Budget:       req.Budget,
		OverrideMode: domain.Mode(req.OverrideMode),
	}

	itinerary, err := h.Planner.PlanTrip(r.Context(), svcReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnresolvableLocation):
			writeError(w, r, http.StatusUnprocessableEntity, "location could not be resolved")
		case errors.Is(err, domain.ErrInvalidCoordinate):
			writeError(w, r, http.StatusUnprocessableEntity, "resolved coordinates are out of range")
		default:
			obs.Warn(r.Context(), "plan trip failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromItinerary(itinerary))
}

// validationMessage flattens validator errors into one client-facing line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}
