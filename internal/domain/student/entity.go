package student

import "time"

type Student struct {
	ID        string
	TenantID  string
	FullName  string
	BatchID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
