package http

import (
	"context"

	"github.com/classtrack/coaching-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// callerClaims is the verified token identity every protected handler needs.
// teacherID is empty for users without a teacher profile.
type callerClaims struct {
	userID    string
	tenantID  string
	role      string
	teacherID string
}

func claimsFromContext(ctx context.Context) (callerClaims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return callerClaims{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return callerClaims{}, auth.ErrInvalidToken
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return callerClaims{}, auth.ErrInvalidToken
	}

	c := callerClaims{userID: userID, tenantID: tenantID}
	if role, ok := claims["role"].(string); ok {
		c.role = role
	}
	if teacherID, ok := claims["teacher_id"].(string); ok {
		c.teacherID = teacherID
	}

	return c, nil
}
