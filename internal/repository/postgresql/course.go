package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/classtrack/coaching-backend-go/internal/domain/master/course"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type courseRepository struct {
	db *database.DB
}

// GetByID implements course.CourseRepository.
func (c *courseRepository) GetByID(ctx context.Context, id string, tenantID string) (course.Course, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, tenant_id, name, created_at, updated_at
		FROM courses
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var cs course.Course
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&cs.ID, &cs.TenantID, &cs.Name, &cs.CreatedAt, &cs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return course.Course{}, course.ErrCourseNotFound
		}
		return course.Course{}, fmt.Errorf("failed to get course by ID: %w", err)
	}

	return cs, nil
}

func NewCourseRepository(db *database.DB) course.CourseRepository {
	return &courseRepository{db: db}
}
