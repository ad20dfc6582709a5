package shift

import (
	"github.com/classtrack/coaching-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	TenantID string `json:"-"`

	Name         string `json:"name"`
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	GraceMinutes *int   `json:"grace_minutes,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, ok := validator.IsValidClock(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if _, ok := validator.IsValidClock(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	TenantID string `json:"-"`
	ShiftID  string `json:"-"`

	Name         *string `json:"name,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	GraceMinutes *int    `json:"grace_minutes,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StartTime != nil {
		if _, ok := validator.IsValidClock(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidClock(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}
	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignShiftRequest struct {
	TenantID string `json:"-"`
	ShiftID  string `json:"-"`

	TeacherID string `json:"teacher_id"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{
			Field:   "teacher_id",
			Message: "teacher_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	GraceMinutes int    `json:"grace_minutes"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func NewShiftResponse(def Definition) ShiftResponse {
	return ShiftResponse{
		ID:           def.ID,
		Name:         def.Name,
		StartTime:    def.StartTime.String(),
		EndTime:      def.EndTime.String(),
		GraceMinutes: def.GraceMinutes,
		CreatedAt:    def.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    def.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
