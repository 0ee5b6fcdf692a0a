package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/trip"
	"github.com/worksite-labs/timeclock-backend-go/internal/handler/http/response"
)

type TripHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type tripHandlerImpl struct {
	tripService trip.TripService
}

func NewTripHandler(tripService trip.TripService) TripHandler {
	return &tripHandlerImpl{
		tripService: tripService,
	}
}

// Record implements TripHandler.
func (h *tripHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req trip.RecordTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tripService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Trip recorded", result)
}

// Today implements TripHandler.
func (h *tripHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.tripService.Today(r.Context(), chi.URLParam(r, "driverID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
