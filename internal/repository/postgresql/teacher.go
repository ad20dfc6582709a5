package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/classtrack/coaching-backend-go/internal/domain/teacher"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teacherRepository struct {
	db *database.DB
}

// GetByID implements teacher.TeacherRepository.
func (t *teacherRepository) GetByID(ctx context.Context, id string, tenantID string) (teacher.Teacher, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, tenant_id, user_id, full_name, branch_id, shift_id, created_at, updated_at
		FROM teachers
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var tc teacher.Teacher
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&tc.ID, &tc.TenantID, &tc.UserID, &tc.FullName, &tc.BranchID, &tc.ShiftID,
		&tc.CreatedAt, &tc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher by ID: %w", err)
	}

	return tc, nil
}

// GetByUserID implements teacher.TeacherRepository.
func (t *teacherRepository) GetByUserID(ctx context.Context, userID string, tenantID string) (*teacher.Teacher, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, tenant_id, user_id, full_name, branch_id, shift_id, created_at, updated_at
		FROM teachers
		WHERE user_id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var tc teacher.Teacher
	err := q.QueryRow(ctx, query, userID, tenantID).Scan(
		&tc.ID, &tc.TenantID, &tc.UserID, &tc.FullName, &tc.BranchID, &tc.ShiftID,
		&tc.CreatedAt, &tc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get teacher by user ID: %w", err)
	}

	return &tc, nil
}

// SetShift implements teacher.TeacherRepository.
func (t *teacherRepository) SetShift(ctx context.Context, teacherID string, shiftID *string, tenantID string) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE teachers
		SET shift_id = $1, updated_at = now()
		WHERE id = $2 AND tenant_id = $3 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, shiftID, teacherID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to set teacher shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}

	return nil
}

func NewTeacherRepository(db *database.DB) teacher.TeacherRepository {
	return &teacherRepository{db: db}
}
