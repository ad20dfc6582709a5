package student

import "context"

// StudentRepository resolves student references for tenant-scoped validation.
type StudentRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Student, error)
}
