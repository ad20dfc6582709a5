package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound       = errors.New("attendance record not found")
	ErrAlreadySubmitted     = errors.New("attendance already submitted for this date")
	ErrSessionScopeRequired = errors.New("either batch_id or course_id is required, but not both")

	// ErrSubjectKindMismatch means an upsert hit an existing record whose
	// subject kind differs from the key. That is a caller bug, not a
	// recoverable request error.
	ErrSubjectKindMismatch = errors.New("existing attendance record has a different subject kind")
)
