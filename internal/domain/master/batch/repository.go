package batch

import "context"

// BatchRepository resolves batch references for tenant-scoped validation.
type BatchRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Batch, error)
}
