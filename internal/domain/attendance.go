package domain

import "fmt"

// BaselineWorkdayMinutes is the length of a normal workday (9 hours).
const BaselineWorkdayMinutes = 9 * 60

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinutesUntil returns the minutes from t to end, wrapping past midnight
// when end is earlier than t.
func (t TimeOfDay) MinutesUntil(end TimeOfDay) int {
	d := end.Minutes() - t.Minutes()
	if d < 0 {
		d += minutesPerDay
	}
	return d
}

// AttendanceRecord is one clock-in/clock-out entry.
type AttendanceRecord struct {
	ID              int64
	ClockIn         string
	ClockOut        string
	WorkDate        string
	OvertimeMinutes int
}

// OvertimeDisplay renders OvertimeMinutes as "Xh Ymin".
func (r AttendanceRecord) OvertimeDisplay() string {
	return FormatOvertime(r.OvertimeMinutes)
}

func FormatOvertime(minutes int) string {
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}
