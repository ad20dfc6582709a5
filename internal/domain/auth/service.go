package auth

import "context"

// AuthService issues access tokens for tenant-scoped users.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
