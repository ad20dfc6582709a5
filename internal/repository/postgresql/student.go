package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/classtrack/coaching-backend-go/internal/domain/student"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type studentRepository struct {
	db *database.DB
}

// GetByID implements student.StudentRepository.
func (s *studentRepository) GetByID(ctx context.Context, id string, tenantID string) (student.Student, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, tenant_id, full_name, batch_id, created_at, updated_at
		FROM students
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var st student.Student
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&st.ID, &st.TenantID, &st.FullName, &st.BatchID, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student by ID: %w", err)
	}

	return st, nil
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepository{db: db}
}
