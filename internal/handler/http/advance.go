package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/advance"
	"github.com/worksite-labs/timeclock-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByWorker(w http.ResponseWriter, r *http.Request)
	Total(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{
		advanceService: advanceService,
	}
}

// Create implements AdvanceHandler.
func (h *advanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.advanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded", result)
}

// ListByWorker implements AdvanceHandler.
func (h *advanceHandlerImpl) ListByWorker(w http.ResponseWriter, r *http.Request) {
	result, err := h.advanceService.ListByWorker(r.Context(), chi.URLParam(r, "workerID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Total implements AdvanceHandler.
func (h *advanceHandlerImpl) Total(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")
	if start == "" || end == "" {
		response.BadRequest(w, "startDate and endDate are required", nil)
		return
	}

	total, err := h.advanceService.TotalInRange(r.Context(), chi.URLParam(r, "workerID"), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advance.TotalResponse{Total: total})
}
