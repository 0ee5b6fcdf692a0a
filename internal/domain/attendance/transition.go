package attendance

import (
	"time"

	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/timeutil"
)

// Transition applies one clock event to a day's record and returns the
// updated copy. rec == nil means no record exists for the date yet; only
// check_in is accepted then, and the returned record carries the new check-in
// time with the caller responsible for identity fields (ID, WorkerID, Date).
//
// Valid paths per day are check_in -> check_out, or
// check_in -> lunch_out -> lunch_in -> check_out. An open lunch (lunch_out
// without lunch_in) blocks check_out. The function is pure: persistence is
// the caller's job, and a returned error implies rec was not touched.
func Transition(rec *Record, event EventType, now string) (Record, error) {
	if rec == nil {
		if event != EventCheckIn {
			return Record{}, ErrMustCheckInFirst
		}
		return Record{CheckIn: &now, TotalHours: 0}, nil
	}

	updated := *rec

	switch event {
	case EventCheckIn:
		if rec.CheckIn != nil {
			return Record{}, ErrAlreadyCheckedIn
		}
		updated.CheckIn = &now
		// A fresh check-in re-establishes the invariant that hours are only
		// nonzero after a completed check-out.
		updated.TotalHours = 0

	case EventLunchOut:
		if rec.CheckIn == nil {
			return Record{}, ErrMustCheckInFirst
		}
		if rec.CheckOut != nil {
			return Record{}, ErrAlreadyClosed
		}
		if rec.LunchOut != nil {
			return Record{}, ErrAlreadyLunchedOut
		}
		updated.LunchOut = &now

	case EventLunchIn:
		if rec.LunchOut == nil {
			return Record{}, ErrMustLunchOutFirst
		}
		if rec.CheckOut != nil {
			return Record{}, ErrAlreadyClosed
		}
		if rec.LunchIn != nil {
			return Record{}, ErrAlreadyLunchedIn
		}
		updated.LunchIn = &now

	case EventCheckOut:
		if rec.CheckIn == nil {
			return Record{}, ErrMustCheckInFirst
		}
		// Lunch may be skipped entirely; lunch_in is only required once
		// lunch_out was recorded.
		if rec.LunchOut != nil && rec.LunchIn == nil {
			return Record{}, ErrMustLunchInFirst
		}
		if rec.CheckOut != nil {
			return Record{}, ErrAlreadyClosed
		}
		updated.CheckOut = &now
		hours, err := computeTotalHours(*rec.CheckIn, now, rec.LunchOut, rec.LunchIn)
		if err != nil {
			return Record{}, err
		}
		updated.TotalHours = hours

	default:
		return Record{}, ErrUnknownEvent
	}

	return updated, nil
}

func computeTotalHours(checkIn, checkOut string, lunchOut, lunchIn *string) (float64, error) {
	start, err := timeutil.ParseTimeOfDay(checkIn)
	if err != nil {
		return 0, err
	}
	end, err := timeutil.ParseTimeOfDay(checkOut)
	if err != nil {
		return 0, err
	}

	var breakStart, breakEnd *time.Time
	if lunchOut != nil && lunchIn != nil {
		bs, err := timeutil.ParseTimeOfDay(*lunchOut)
		if err != nil {
			return 0, err
		}
		be, err := timeutil.ParseTimeOfDay(*lunchIn)
		if err != nil {
			return 0, err
		}
		breakStart, breakEnd = &bs, &be
	}

	return timeutil.ElapsedHours(start, end, breakStart, breakEnd), nil
}
