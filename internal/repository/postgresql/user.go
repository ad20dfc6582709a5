package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/classtrack/coaching-backend-go/internal/domain/user"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

// GetByEmail implements user.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string, tenantID string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, tenant_id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var usr user.User
	err := q.QueryRow(ctx, query, email, tenantID).Scan(
		&usr.ID, &usr.TenantID, &usr.Email, &usr.PasswordHash, &usr.Role,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return usr, nil
}

// GetByID implements user.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string, tenantID string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, tenant_id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&usr.ID, &usr.TenantID, &usr.Email, &usr.PasswordHash, &usr.Role,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return usr, nil
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}
