package branch

import "context"

// BranchRepository resolves branch references for tenant-scoped validation.
type BranchRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Branch, error)
}
