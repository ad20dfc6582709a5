package attendance

import (
	"time"

	"github.com/classtrack/coaching-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Tenant and caller identity are filled by the HTTP layer from verified
// claims, never decoded from the request body.

type MarkItem struct {
	StudentID string  `json:"student_id"`
	Status    string  `json:"status"`
	Remarks   *string `json:"remarks,omitempty"`
}

type MarkSessionRequest struct {
	TenantID string `json:"-"`
	MarkedBy string `json:"-"`

	BatchID  *string    `json:"batch_id,omitempty"`
	CourseID *string    `json:"course_id,omitempty"`
	Date     string     `json:"date"`
	Items    []MarkItem `json:"attendance_items"`
}

func (r *MarkSessionRequest) Validate() error {
	if err := validateScope(r.BatchID, r.CourseID); err != nil {
		return err
	}

	var errs validator.ValidationErrors

	if r.BatchID != nil && *r.BatchID != "" && !validator.IsValidUUID(*r.BatchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "batch_id",
			Message: "batch_id must be a valid UUID",
		})
	}
	if r.CourseID != nil && *r.CourseID != "" && !validator.IsValidUUID(*r.CourseID) {
		errs = append(errs, validator.ValidationError{
			Field:   "course_id",
			Message: "course_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_items",
			Message: "at least one attendance item is required",
		})
	}

	for _, item := range r.Items {
		if !validator.IsValidUUID(item.StudentID) {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance_items.student_id",
				Message: "student_id must be a valid UUID",
			})
			break
		}
		if _, err := ParseStatus(item.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance_items.status",
				Message: "status must be one of: present, absent, late, excused",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkSessionResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

type SelfReportRequest struct {
	TenantID  string `json:"-"`
	TeacherID string `json:"-"`

	Date        *string `json:"date,omitempty"`          // YYYY-MM-DD, defaults to today
	CheckInTime *string `json:"check_in_time,omitempty"` // HH:MM, defaults to now
	Remarks     *string `json:"remarks,omitempty"`
}

func (r *SelfReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.CheckInTime != nil && *r.CheckInTime != "" {
		if _, ok := validator.IsValidClock(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CheckInAt resolves the check-in instant: the caller-supplied date and
// clock when given, the current instant otherwise.
func (r *SelfReportRequest) CheckInAt(now time.Time) time.Time {
	day := now.UTC()
	if r.Date != nil && *r.Date != "" {
		if parsed, ok := validator.IsValidDate(*r.Date); ok {
			day = parsed
		}
	}

	clock := now.UTC()
	if r.CheckInTime != nil && *r.CheckInTime != "" {
		if parsed, ok := validator.IsValidClock(*r.CheckInTime); ok {
			clock = parsed
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}

type SessionQuery struct {
	TenantID string `json:"-"`

	BatchID  *string
	CourseID *string
	Date     string
}

func (q *SessionQuery) Validate() error {
	if err := validateScope(q.BatchID, q.CourseID); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	if q.BatchID != nil && *q.BatchID != "" && !validator.IsValidUUID(*q.BatchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "batch_id",
			Message: "batch_id must be a valid UUID",
		})
	}
	if q.CourseID != nil && *q.CourseID != "" && !validator.IsValidUUID(*q.CourseID) {
		errs = append(errs, validator.ValidationError{
			Field:   "course_id",
			Message: "course_id must be a valid UUID",
		})
	}
	if _, ok := validator.IsValidDate(q.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListPendingRequest struct {
	TenantID string `json:"-"`
	BranchID *string
}

type ApproveRequest struct {
	TenantID   string `json:"-"`
	ApproverID string `json:"-"`
	RecordID   string `json:"-"`
}

type StudentHistoryQuery struct {
	TenantID  string `json:"-"`
	StudentID string
}

type TeacherHistoryFilter struct {
	TenantID string `json:"-"`

	TeacherID *string `json:"teacher_id,omitempty"`
	BranchID  *string `json:"branch_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *TeacherHistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.TeacherID != nil && *f.TeacherID != "" && !validator.IsValidUUID(*f.TeacherID) {
		errs = append(errs, validator.ValidationError{
			Field:   "teacher_id",
			Message: "teacher_id must be a valid UUID",
		})
	}
	if f.BranchID != nil && *f.BranchID != "" && !validator.IsValidUUID(*f.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id must be a valid UUID",
		})
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be positive",
		})
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateScope enforces the batch-XOR-course session scope.
func validateScope(batchID, courseID *string) error {
	hasBatch := batchID != nil && *batchID != ""
	hasCourse := courseID != nil && *courseID != ""
	if hasBatch == hasCourse {
		return ErrSessionScopeRequired
	}
	return nil
}

type RecordResponse struct {
	ID          string  `json:"id"`
	SubjectKind string  `json:"subject_kind"`
	StudentID   *string `json:"student_id,omitempty"`
	TeacherID   *string `json:"teacher_id,omitempty"`
	SubjectName *string `json:"subject_name,omitempty"`
	BatchID     *string `json:"batch_id,omitempty"`
	CourseID    *string `json:"course_id,omitempty"`
	Date        string  `json:"date"`
	CheckInAt   *string `json:"check_in_at,omitempty"`
	Status      string  `json:"status"`
	IsApproved  bool    `json:"is_approved"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	MarkedBy    string  `json:"marked_by"`
	Remarks     *string `json:"remarks,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type StudentHistoryResponse struct {
	Records []RecordResponse `json:"records"`
	Summary Summary          `json:"summary"`
}

type ListTeacherHistoryResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
