package attendance

import "errors"

// Attendance domain errors. The transition errors are local rejections: the
// record is never partially mutated when one of these is returned.
var (
	ErrMustCheckInFirst  = errors.New("worker must check in first")
	ErrAlreadyCheckedIn  = errors.New("worker has already checked in today")
	ErrAlreadyLunchedOut = errors.New("lunch out has already been recorded")
	ErrMustLunchOutFirst = errors.New("lunch out must be recorded first")
	ErrAlreadyLunchedIn  = errors.New("lunch return has already been recorded")
	ErrMustLunchInFirst  = errors.New("lunch return must be recorded first")
	ErrAlreadyClosed     = errors.New("worker has already checked out - record is closed")

	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnknownEvent   = errors.New("unknown attendance event type")
)
