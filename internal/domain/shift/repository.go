package shift

import "context"

// ShiftRepository defines data access for shift definitions. All methods
// take a tenantID to prevent cross-tenant access; soft-deleted shifts are
// invisible.
type ShiftRepository interface {
	Create(ctx context.Context, def Definition) (Definition, error)
	GetByID(ctx context.Context, id string, tenantID string) (Definition, error)
	List(ctx context.Context, tenantID string) ([]Definition, error)
	Update(ctx context.Context, def Definition) (Definition, error)
	SoftDelete(ctx context.Context, id string, tenantID string) error
}
