package http

import (
	"encoding/json"
	"net/http"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordEvent(w http.ResponseWriter, r *http.Request)
	AddBonus(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ResetToday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// RecordEvent implements AttendanceHandler. The kiosk expects the flat
// {success, time, totalHours} shape rather than the envelope.
func (h *attendanceHandlerImpl) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// AddBonus implements AttendanceHandler.
func (h *attendanceHandlerImpl) AddBonus(w http.ResponseWriter, r *http.Request) {
	var req attendance.AddBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.AddBonus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	rows, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if rows == nil {
		rows = []attendance.TodayRow{}
	}
	response.JSON(w, http.StatusOK, rows)
}

// ResetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) ResetToday(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.attendanceService.ResetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Today's attendance reset", map[string]int64{"deleted": deleted})
}
