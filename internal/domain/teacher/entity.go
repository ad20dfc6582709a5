package teacher

import "time"

type Teacher struct {
	ID        string
	TenantID  string
	UserID    *string
	FullName  string
	BranchID  *string
	ShiftID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
