package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/classtrack/coaching-backend-go/internal/domain/master/batch"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type batchRepository struct {
	db *database.DB
}

// GetByID implements batch.BatchRepository.
func (b *batchRepository) GetByID(ctx context.Context, id string, tenantID string) (batch.Batch, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, tenant_id, course_id, name, created_at, updated_at
		FROM batches
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var bt batch.Batch
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&bt.ID, &bt.TenantID, &bt.CourseID, &bt.Name, &bt.CreatedAt, &bt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return batch.Batch{}, batch.ErrBatchNotFound
		}
		return batch.Batch{}, fmt.Errorf("failed to get batch by ID: %w", err)
	}

	return bt, nil
}

func NewBatchRepository(db *database.DB) batch.BatchRepository {
	return &batchRepository{db: db}
}
