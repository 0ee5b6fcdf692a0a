package http

import (
	"encoding/json"
	"net/http"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
	"github.com/worksite-labs/timeclock-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	UpdateHourlyRate(w http.ResponseWriter, r *http.Request)
	UpdatePassword(w http.ResponseWriter, r *http.Request)
	UpdateCompany(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// Get implements SettingsHandler.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateHourlyRate implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateHourlyRate(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateHourlyRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingsService.SetHourlyRate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hourly rate updated", nil)
}

// UpdatePassword implements SettingsHandler.
func (h *settingsHandlerImpl) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingsService.SetPassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password updated", nil)
}

// UpdateCompany implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingsService.SetCompanyProfile(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company profile updated", nil)
}
