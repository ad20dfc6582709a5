package user

import "context"

// UserRepository defines data access for platform users. All methods take a
// tenantID to prevent cross-tenant access.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string, tenantID string) (User, error)
	GetByID(ctx context.Context, id string, tenantID string) (User, error)
}
