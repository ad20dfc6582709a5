package teacher

import "context"

// TeacherRepository defines data access for teacher profiles. All methods
// take a tenantID to prevent cross-tenant access.
type TeacherRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Teacher, error)

	// GetByUserID resolves the teacher profile behind a platform user, if
	// any. Returns nil without error when the user is not a teacher.
	GetByUserID(ctx context.Context, userID string, tenantID string) (*Teacher, error)

	// SetShift assigns a shift to a teacher; nil clears the assignment.
	SetShift(ctx context.Context, teacherID string, shiftID *string, tenantID string) error
}
