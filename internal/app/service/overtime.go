package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ponto/internal/domain"
)

// ParseTimeOfDay parses "HH:MM". Hours and minutes may have one or two digits.
func ParseTimeOfDay(s string) (domain.TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return domain.TimeOfDay{}, fmt.Errorf("%w: %q (expected HH:MM)", domain.ErrInvalidTimeFormat, s)
	}
	h, okH := parseClockField(hh, 23)
	m, okM := parseClockField(mm, 59)
	if !okH || !okM {
		return domain.TimeOfDay{}, fmt.Errorf("%w: %q (expected HH:MM)", domain.ErrInvalidTimeFormat, s)
	}
	return domain.TimeOfDay{Hour: h, Minute: m}, nil
}

func parseClockField(s string, max int) (int, bool) {
	if len(s) < 1 || len(s) > 2 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > max {
		return 0, false
	}
	return n, true
}

// ComputeOvertime returns the minutes worked beyond the 9-hour baseline.
// A clock-out earlier than the clock-in is taken as the next day.
func ComputeOvertime(clockIn, clockOut domain.TimeOfDay) int {
	worked := clockIn.MinutesUntil(clockOut)
	return max(0, worked-domain.BaselineWorkdayMinutes)
}

func CalculateOvertime(clockIn, clockOut string) (int, error) {
	in, err := ParseTimeOfDay(clockIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseTimeOfDay(clockOut)
	if err != nil {
		return 0, err
	}
	return ComputeOvertime(in, out), nil
}

// canonicalClock returns s as "HH:MM" when it parses, s unchanged otherwise.
func canonicalClock(s string) string {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return s
	}
	return t.String()
}

// canonicalDate returns s as "YYYY-MM-DD" when it is a calendar date with
// optionally unpadded month and day, s unchanged otherwise.
func canonicalDate(s string) string {
	d, err := time.Parse("2006-1-2", s)
	if err != nil {
		return s
	}
	return d.Format(time.DateOnly)
}
