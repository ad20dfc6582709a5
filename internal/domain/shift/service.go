package shift

import "context"

// ShiftService defines shift administration operations (admin-only surface).
type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	ListShifts(ctx context.Context, tenantID string) ([]ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id string, tenantID string) error

	// AssignToTeacher sets a teacher's assigned shift.
	AssignToTeacher(ctx context.Context, req AssignShiftRequest) error
}
