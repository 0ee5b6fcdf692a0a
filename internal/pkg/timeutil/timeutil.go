// Package timeutil handles the clock-event time-of-day strings the attendance
// subsystem stores ("HH:MM:SS") and the elapsed-hours arithmetic built on them.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM:SS")

// The calendar date is irrelevant for time-of-day math; every parsed value is
// pinned to the same reference day so durations come out right.
var referenceDay = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseTimeOfDay parses an "HH:MM:SS" string into an instant on a fixed
// reference date. Only the exact zero-padded form is accepted.
func ParseTimeOfDay(s string) (time.Time, error) {
	parsed, err := time.Parse("15:04:05", s)
	if err != nil || len(s) != 8 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return referenceDay.Add(
		time.Duration(parsed.Hour())*time.Hour +
			time.Duration(parsed.Minute())*time.Minute +
			time.Duration(parsed.Second())*time.Second,
	), nil
}

// ElapsedHours returns the hours between start and end, minus the lunch break
// when BOTH break bounds are present. Negative spans floor to 0 rather than
// erroring; the result is rounded to 2 decimal places.
func ElapsedHours(start, end time.Time, breakStart, breakEnd *time.Time) float64 {
	totalMinutes := end.Sub(start).Minutes()

	if breakStart != nil && breakEnd != nil {
		totalMinutes -= breakEnd.Sub(*breakStart).Minutes()
	}

	return Round2(math.Max(0, totalMinutes/60))
}

// FormatTimeOfDay renders an instant back to the stored "HH:MM:SS" form.
func FormatTimeOfDay(t time.Time) string {
	return t.Format("15:04:05")
}

// Round2 rounds to 2 decimal places, the precision every hour and money
// figure is presented with.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
