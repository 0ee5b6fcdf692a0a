package response

import (
	"errors"
	"net/http"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/auth"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance state machine rejections. The kiosk shows these messages
	// verbatim, so they pass through.
	case errors.Is(err, attendance.ErrMustCheckInFirst),
		errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyLunchedOut),
		errors.Is(err, attendance.ErrMustLunchOutFirst),
		errors.Is(err, attendance.ErrAlreadyLunchedIn),
		errors.Is(err, attendance.ErrMustLunchInFirst),
		errors.Is(err, attendance.ErrAlreadyClosed),
		errors.Is(err, attendance.ErrUnknownEvent):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrNationalIDExists):
		Conflict(w, "National ID already registered")
	case errors.Is(err, worker.ErrNotADriver):
		BadRequest(w, "Worker is not a driver", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	case errors.Is(err, settings.ErrSettingsNotFound):
		InternalServerError(w, "Settings row is missing")

	default:
		InternalServerError(w, err.Error())
	}
}
