package shift

import (
	"testing"
	"time"

	"github.com/classtrack/coaching-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) TimeOfDay {
	t.Helper()
	clock, err := ParseClock(s)
	require.NoError(t, err)
	return clock
}

func TestEvaluate_NoShiftAssigned(t *testing.T) {
	assert.Equal(t, attendance.StatusPresent, Evaluate(mustClock(t, "03:00"), nil))
	assert.Equal(t, attendance.StatusPresent, Evaluate(mustClock(t, "23:59"), nil))
}

func TestEvaluate_DayShift(t *testing.T) {
	def := &Definition{
		StartTime:    mustClock(t, "09:00"),
		EndTime:      mustClock(t, "17:00"),
		GraceMinutes: 15,
	}

	tests := []struct {
		name    string
		checkIn string
		want    attendance.Status
	}{
		{"well before start", "08:00", attendance.StatusPresent},
		{"just before start", "08:59", attendance.StatusPresent},
		{"exactly at start", "09:00", attendance.StatusPresent},
		{"last minute of grace", "09:14", attendance.StatusPresent},
		{"exactly at grace boundary", "09:15", attendance.StatusPresent},
		{"one minute past grace", "09:16", attendance.StatusLate},
		{"midday", "13:00", attendance.StatusLate},
		{"exactly at end", "17:00", attendance.StatusLate},
		{"past end", "17:01", attendance.StatusAbsent},
		{"late evening", "22:00", attendance.StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(mustClock(t, tt.checkIn), def))
		})
	}
}

func TestEvaluate_ZeroGrace(t *testing.T) {
	def := &Definition{
		StartTime:    mustClock(t, "09:00"),
		EndTime:      mustClock(t, "17:00"),
		GraceMinutes: 0,
	}

	assert.Equal(t, attendance.StatusPresent, Evaluate(mustClock(t, "09:00"), def))
	assert.Equal(t, attendance.StatusLate, Evaluate(mustClock(t, "09:01"), def))
}

func TestEvaluate_OvernightShift(t *testing.T) {
	def := &Definition{
		StartTime:    mustClock(t, "22:00"),
		EndTime:      mustClock(t, "06:00"),
		GraceMinutes: 15,
	}

	tests := []struct {
		name    string
		checkIn string
		want    attendance.Status
	}{
		{"at start", "22:00", attendance.StatusPresent},
		{"within grace", "22:10", attendance.StatusPresent},
		{"past grace", "22:30", attendance.StatusLate},
		{"after midnight before end", "02:00", attendance.StatusPresent},
		{"after end before start", "12:00", attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(mustClock(t, tt.checkIn), def))
		})
	}
}

func TestParseClock(t *testing.T) {
	clock, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(9*3600+30*60), clock)
	assert.Equal(t, "09:30", clock.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("0930")
	assert.Error(t, err)
}

func TestClockOf(t *testing.T) {
	at := time.Date(2026, 3, 14, 8, 45, 30, 0, time.UTC)
	assert.Equal(t, TimeOfDay(8*3600+45*60+30), ClockOf(at))
}
