package shift

import (
	"github.com/classtrack/coaching-backend-go/internal/domain/attendance"
)

// Evaluate maps a check-in clock time and an optional shift definition to an
// attendance status. Pure; no error conditions.
//
// No assigned shift always yields present: unassigned teachers are not
// penalized.
//
// Same-day shifts (end after start): checking in after the end is absent,
// after start+grace is late, anything earlier is present.
//
// Shifts crossing midnight (end at or before start) use a coarser rule: a
// check-in later than start+grace, or one that falls before the start while
// already past the end, counts as late and nothing counts as absent. A
// correct midnight-crossing comparison would need a two-day window that a
// single time-of-day value cannot provide.
func Evaluate(checkIn TimeOfDay, def *Definition) attendance.Status {
	if def == nil {
		return attendance.StatusPresent
	}

	grace := TimeOfDay(def.GraceMinutes * 60)

	if def.EndTime > def.StartTime {
		if checkIn > def.EndTime {
			return attendance.StatusAbsent
		}
		if checkIn > def.StartTime+grace {
			return attendance.StatusLate
		}
		return attendance.StatusPresent
	}

	if checkIn > def.StartTime+grace || (checkIn < def.StartTime && checkIn > def.EndTime) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}
