package shift

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time expressed as seconds since midnight. Shift
// boundaries carry no date; comparisons happen within one calendar day.
type TimeOfDay int

// ClockOf extracts the time-of-day of an instant.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// ParseClock parses a "HH:MM" clock string.
func ParseClock(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockOf(t), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/3600, int(t)%3600/60)
}

// DefaultGraceMinutes applies when a shift is created without one.
const DefaultGraceMinutes = 15

// Definition is a per-tenant shift: a named start/end clock window with a
// grace period. A teacher has at most one assigned shift at a time.
type Definition struct {
	ID           string
	TenantID     string
	Name         string
	StartTime    TimeOfDay
	EndTime      TimeOfDay
	GraceMinutes int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
