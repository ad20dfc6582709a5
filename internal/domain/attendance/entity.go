package attendance

import (
	"fmt"
	"time"
)

// SubjectKind tells whether a record describes a student or a teacher. It is
// authoritative: exactly one of StudentID/TeacherID is set and must match.
type SubjectKind string

const (
	SubjectStudent SubjectKind = "student"
	SubjectTeacher SubjectKind = "teacher"
)

func ParseSubjectKind(s string) (SubjectKind, error) {
	switch SubjectKind(s) {
	case SubjectStudent, SubjectTeacher:
		return SubjectKind(s), nil
	}
	return "", fmt.Errorf("unknown subject kind %q", s)
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusExcused Status = "excused"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusExcused),
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown attendance status %q", s)
}

// Record is one attendance row per (tenant, subject, scope, date). Student
// records are auto-approved at creation; teacher records start unapproved and
// go through the approval workflow. Rows are never physically deleted.
type Record struct {
	ID          string
	TenantID    string
	SubjectKind SubjectKind
	StudentID   *string
	TeacherID   *string
	BatchID     *string
	CourseID    *string
	Date        time.Time
	CheckInAt   *time.Time
	Status      Status
	IsApproved  bool
	ApprovedBy  *string
	MarkedBy    string
	Remarks     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	// DTO
	SubjectName *string
}

// Key identifies the unique attendance slot a record occupies. BatchID and
// CourseID form the scope; both are nil for teacher records.
type Key struct {
	TenantID    string
	SubjectKind SubjectKind
	SubjectID   string
	BatchID     *string
	CourseID    *string
	Date        time.Time
}

// Mutation carries the caller-editable fields of an upsert. Approval state is
// derived from the subject kind, never from the caller.
type Mutation struct {
	Status    Status
	Remarks   *string
	MarkedBy  string
	CheckInAt *time.Time
}

// Summary aggregates a student's history.
type Summary struct {
	Total      int64   `json:"total"`
	Present    int64   `json:"present"`
	Absent     int64   `json:"absent"`
	Percentage float64 `json:"percentage"`
}
