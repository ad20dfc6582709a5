package course

import "context"

// CourseRepository resolves course references for tenant-scoped validation.
type CourseRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Course, error)
}
