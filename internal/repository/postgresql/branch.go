package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/classtrack/coaching-backend-go/internal/domain/master/branch"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type branchRepository struct {
	db *database.DB
}

// GetByID implements branch.BranchRepository.
func (b *branchRepository) GetByID(ctx context.Context, id string, tenantID string) (branch.Branch, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, tenant_id, name, created_at, updated_at
		FROM branches
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var br branch.Branch
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&br.ID, &br.TenantID, &br.Name, &br.CreatedAt, &br.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch by ID: %w", err)
	}

	return br, nil
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepository{db: db}
}
