package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day without a date component.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM" (a trailing ":SS" segment is accepted and ignored,
// matching the format the profile backend stores).
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: hour out of range", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: minute out of range", s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinutesOfDay returns minutes since midnight.
func (c ClockTime) MinutesOfDay() int {
	return c.Hour*60 + c.Minute
}

// At places the clock time on the same calendar day as base, in base's location.
func (c ClockTime) At(base time.Time) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), c.Hour, c.Minute, 0, 0, base.Location())
}

// DailyWindow is the daily clock-time range during which notifications may fire.
type DailyWindow struct {
	Start ClockTime
	End   ClockTime
}

// Validate rejects zero-length and midnight-crossing windows. End must be strictly
// later in the day than Start; windows like 22:00-02:00 are refused at the edit
// boundary rather than resolved across days.
func (w DailyWindow) Validate() error {
	if w.End.MinutesOfDay() <= w.Start.MinutesOfDay() {
		return ErrInvalidWindow
	}
	return nil
}

// Duration returns the window length within a single day.
func (w DailyWindow) Duration() time.Duration {
	return time.Duration(w.End.MinutesOfDay()-w.Start.MinutesOfDay()) * time.Minute
}
