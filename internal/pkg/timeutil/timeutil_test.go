package timeutil

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
	}{
		{"08:00:00", false},
		{"23:59:59", false},
		{"24:00:00", true},
		{"08:61:00", true},
		{"not-a-time", true},
		{"", true},
		// Only the exact zero-padded form the store writes is valid.
		{"0:5:9", true},
		{"8:00:00", true},
		{"08:00:00xyz", true},
		{"08:00", true},
	}
	for _, c := range cases {
		_, err := ParseTimeOfDay(c.input)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseTimeOfDay(%q) error = %v, wantErr %v", c.input, err, c.wantErr)
		}
	}
}

func TestParseTimeOfDayComponents(t *testing.T) {
	got, err := ParseTimeOfDay("09:30:15")
	if err != nil {
		t.Fatalf("ParseTimeOfDay: %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 30 || got.Second() != 15 {
		t.Errorf("ParseTimeOfDay(09:30:15) = %v", got)
	}
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return v
}

func TestElapsedHours(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		breakStart *string
		breakEnd   *string
		want       float64
	}{
		{name: "full day with lunch", start: "08:00:00", end: "17:00:00", breakStart: ptr("12:00:00"), breakEnd: ptr("13:00:00"), want: 8.00},
		{name: "no lunch", start: "08:00:00", end: "16:30:00", want: 8.50},
		{name: "lunch start only is ignored", start: "08:00:00", end: "16:00:00", breakStart: ptr("12:00:00"), want: 8.00},
		{name: "lunch end only is ignored", start: "08:00:00", end: "16:00:00", breakEnd: ptr("13:00:00"), want: 8.00},
		{name: "negative span floors to zero", start: "17:00:00", end: "08:00:00", want: 0},
		{name: "zero span", start: "08:00:00", end: "08:00:00", want: 0},
		{name: "rounds to two decimals", start: "08:00:00", end: "08:10:00", want: 0.17},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start := mustParse(t, c.start)
			end := mustParse(t, c.end)
			var bs, be *time.Time
			if c.breakStart != nil {
				v := mustParse(t, *c.breakStart)
				bs = &v
			}
			if c.breakEnd != nil {
				v := mustParse(t, *c.breakEnd)
				be = &v
			}
			got := ElapsedHours(start, end, bs, be)
			if got != c.want {
				t.Errorf("ElapsedHours = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFormatTimeOfDayRoundTrip(t *testing.T) {
	got := FormatTimeOfDay(mustParse(t, "07:05:09"))
	if got != "07:05:09" {
		t.Errorf("FormatTimeOfDay = %q, want %q", got, "07:05:09")
	}
}

func ptr(s string) *string { return &s }
