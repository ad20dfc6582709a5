package response

import (
	"errors"
	"net/http"

	"github.com/classtrack/coaching-backend-go/internal/domain/attendance"
	"github.com/classtrack/coaching-backend-go/internal/domain/auth"
	"github.com/classtrack/coaching-backend-go/internal/domain/master/batch"
	"github.com/classtrack/coaching-backend-go/internal/domain/master/branch"
	"github.com/classtrack/coaching-backend-go/internal/domain/master/course"
	"github.com/classtrack/coaching-backend-go/internal/domain/shift"
	"github.com/classtrack/coaching-backend-go/internal/domain/student"
	"github.com/classtrack/coaching-backend-go/internal/domain/teacher"
	"github.com/classtrack/coaching-backend-go/internal/domain/user"
	"github.com/classtrack/coaching-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrTeacherAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSessionScopeRequired):
		BadRequest(w, "Exactly one of batch_id or course_id is required", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadySubmitted):
		Conflict(w, "Attendance already submitted for this day")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Master data errors
	case errors.Is(err, batch.ErrBatchNotFound):
		NotFound(w, "Batch not found")
	case errors.Is(err, course.ErrCourseNotFound):
		NotFound(w, "Course not found")
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
