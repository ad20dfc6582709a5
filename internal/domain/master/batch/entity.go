package batch

import "time"

type Batch struct {
	ID        string
	TenantID  string
	CourseID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
