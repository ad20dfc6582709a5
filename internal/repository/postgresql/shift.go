package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/classtrack/coaching-backend-go/internal/domain/shift"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

// shiftRow mirrors the shifts table; clock columns are stored as "HH:MM"
// text and parsed into the domain type on scan.
type shiftRow struct {
	def       shift.Definition
	startTime string
	endTime   string
}

func (r *shiftRow) toDefinition() (shift.Definition, error) {
	start, err := shift.ParseClock(r.startTime)
	if err != nil {
		return shift.Definition{}, fmt.Errorf("shift %s has invalid start_time: %w", r.def.ID, err)
	}
	end, err := shift.ParseClock(r.endTime)
	if err != nil {
		return shift.Definition{}, fmt.Errorf("shift %s has invalid end_time: %w", r.def.ID, err)
	}
	r.def.StartTime = start
	r.def.EndTime = end
	return r.def, nil
}

// Create implements shift.ShiftRepository.
func (s *shiftRepository) Create(ctx context.Context, def shift.Definition) (shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	if def.ID == "" {
		def.ID = uuid.NewString()
	}

	query := `
		INSERT INTO shifts (id, tenant_id, name, start_time, end_time, grace_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		def.ID, def.TenantID, def.Name,
		def.StartTime.String(), def.EndTime.String(), def.GraceMinutes,
	).Scan(&def.CreatedAt, &def.UpdatedAt)
	if err != nil {
		return shift.Definition{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return def, nil
}

// GetByID implements shift.ShiftRepository.
func (s *shiftRepository) GetByID(ctx context.Context, id string, tenantID string) (shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, tenant_id, name, start_time, end_time, grace_minutes, created_at, updated_at
		FROM shifts
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var row shiftRow
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&row.def.ID, &row.def.TenantID, &row.def.Name,
		&row.startTime, &row.endTime, &row.def.GraceMinutes,
		&row.def.CreatedAt, &row.def.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Definition{}, shift.ErrShiftNotFound
		}
		return shift.Definition{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	return row.toDefinition()
}

// List implements shift.ShiftRepository.
func (s *shiftRepository) List(ctx context.Context, tenantID string) ([]shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, tenant_id, name, start_time, end_time, grace_minutes, created_at, updated_at
		FROM shifts
		WHERE tenant_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var defs []shift.Definition
	for rows.Next() {
		var row shiftRow
		err := rows.Scan(
			&row.def.ID, &row.def.TenantID, &row.def.Name,
			&row.startTime, &row.endTime, &row.def.GraceMinutes,
			&row.def.CreatedAt, &row.def.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		def, err := row.toDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, rows.Err()
}

// Update implements shift.ShiftRepository.
func (s *shiftRepository) Update(ctx context.Context, def shift.Definition) (shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, grace_minutes = $4, updated_at = now()
		WHERE id = $5 AND tenant_id = $6 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		def.Name, def.StartTime.String(), def.EndTime.String(), def.GraceMinutes,
		def.ID, def.TenantID,
	).Scan(&def.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Definition{}, shift.ErrShiftNotFound
		}
		return shift.Definition{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return def, nil
}

// SoftDelete implements shift.ShiftRepository.
func (s *shiftRepository) SoftDelete(ctx context.Context, id string, tenantID string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}
