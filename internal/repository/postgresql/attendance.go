package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/classtrack/coaching-backend-go/internal/domain/attendance"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Find implements attendance.Repository.
func (a *attendanceRepository) Find(ctx context.Context, key attendance.Key) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, tenant_id, subject_kind, student_id, teacher_id, batch_id, course_id,
			   date, check_in_at, status, is_approved, approved_by, marked_by, remarks,
			   created_at, updated_at
		FROM attendance_records
		WHERE tenant_id = $1
		  AND COALESCE(student_id, teacher_id) = $2
		  AND batch_id IS NOT DISTINCT FROM $3
		  AND course_id IS NOT DISTINCT FROM $4
		  AND date = $5
		  AND deleted_at IS NULL
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, key.TenantID, key.SubjectID, key.BatchID, key.CourseID, key.Date).Scan(
		&rec.ID, &rec.TenantID, &rec.SubjectKind, &rec.StudentID, &rec.TeacherID, &rec.BatchID, &rec.CourseID,
		&rec.Date, &rec.CheckInAt, &rec.Status, &rec.IsApproved, &rec.ApprovedBy, &rec.MarkedBy, &rec.Remarks,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}

	return &rec, nil
}

// Upsert implements attendance.Repository.
func (a *attendanceRepository) Upsert(ctx context.Context, key attendance.Key, mut attendance.Mutation) (attendance.Record, bool, error) {
	q := GetQuerier(ctx, a.db)

	existing, err := a.Find(ctx, key)
	if err != nil {
		return attendance.Record{}, false, err
	}

	if existing != nil {
		if existing.SubjectKind != key.SubjectKind {
			return attendance.Record{}, false, fmt.Errorf("upsert for %s key hit %s record %s: %w",
				key.SubjectKind, existing.SubjectKind, existing.ID, attendance.ErrSubjectKindMismatch)
		}

		// Student rows are re-approved by their marker on every re-mark;
		// teacher rows keep their approval state.
		query := `
			UPDATE attendance_records
			SET status = $1, remarks = $2, marked_by = $3,
				check_in_at = COALESCE($4, check_in_at),
				updated_at = now()
			WHERE id = $5
			RETURNING updated_at
		`
		if key.SubjectKind == attendance.SubjectStudent {
			query = `
				UPDATE attendance_records
				SET status = $1, remarks = $2, marked_by = $3,
					check_in_at = COALESCE($4, check_in_at),
					is_approved = true, approved_by = $3,
					updated_at = now()
				WHERE id = $5
				RETURNING updated_at
			`
		}

		err := q.QueryRow(ctx, query, mut.Status, mut.Remarks, mut.MarkedBy, mut.CheckInAt, existing.ID).
			Scan(&existing.UpdatedAt)
		if err != nil {
			return attendance.Record{}, false, fmt.Errorf("failed to update attendance record: %w", err)
		}

		existing.Status = mut.Status
		existing.Remarks = mut.Remarks
		existing.MarkedBy = mut.MarkedBy
		if key.SubjectKind == attendance.SubjectStudent {
			existing.IsApproved = true
			existing.ApprovedBy = &mut.MarkedBy
		}
		return *existing, false, nil
	}

	rec := recordForKey(key, mut)
	created, err := a.Create(ctx, rec)
	if err != nil {
		return attendance.Record{}, false, err
	}
	return created, true, nil
}

// recordForKey builds a new record with the kind-appropriate approval state.
func recordForKey(key attendance.Key, mut attendance.Mutation) attendance.Record {
	rec := attendance.Record{
		ID:          uuid.NewString(),
		TenantID:    key.TenantID,
		SubjectKind: key.SubjectKind,
		BatchID:     key.BatchID,
		CourseID:    key.CourseID,
		Date:        key.Date,
		CheckInAt:   mut.CheckInAt,
		Status:      mut.Status,
		MarkedBy:    mut.MarkedBy,
		Remarks:     mut.Remarks,
	}

	subjectID := key.SubjectID
	switch key.SubjectKind {
	case attendance.SubjectStudent:
		rec.StudentID = &subjectID
		rec.IsApproved = true
		rec.ApprovedBy = &mut.MarkedBy
	case attendance.SubjectTeacher:
		rec.TeacherID = &subjectID
		rec.IsApproved = false
	}

	return rec
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, tenant_id, subject_kind, student_id, teacher_id, batch_id, course_id,
			date, check_in_at, status, is_approved, approved_by, marked_by, remarks
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.TenantID,
		rec.SubjectKind,
		rec.StudentID,
		rec.TeacherID,
		rec.BatchID,
		rec.CourseID,
		rec.Date,
		rec.CheckInAt,
		rec.Status,
		rec.IsApproved,
		rec.ApprovedBy,
		rec.MarkedBy,
		rec.Remarks,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrAlreadySubmitted
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string, tenantID string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.tenant_id, a.subject_kind, a.student_id, a.teacher_id, a.batch_id, a.course_id,
			   a.date, a.check_in_at, a.status, a.is_approved, a.approved_by, a.marked_by, a.remarks,
			   a.created_at, a.updated_at,
			   COALESCE(s.full_name, t.full_name) AS subject_name
		FROM attendance_records a
		LEFT JOIN students s ON s.id = a.student_id
		LEFT JOIN teachers t ON t.id = a.teacher_id
		WHERE a.id = $1 AND a.tenant_id = $2 AND a.deleted_at IS NULL
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&rec.ID, &rec.TenantID, &rec.SubjectKind, &rec.StudentID, &rec.TeacherID, &rec.BatchID, &rec.CourseID,
		&rec.Date, &rec.CheckInAt, &rec.Status, &rec.IsApproved, &rec.ApprovedBy, &rec.MarkedBy, &rec.Remarks,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.SubjectName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// ListBySession implements attendance.Repository.
func (a *attendanceRepository) ListBySession(ctx context.Context, tenantID string, batchID *string, courseID *string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.tenant_id, a.subject_kind, a.student_id, a.teacher_id, a.batch_id, a.course_id,
			   a.date, a.check_in_at, a.status, a.is_approved, a.approved_by, a.marked_by, a.remarks,
			   a.created_at, a.updated_at,
			   s.full_name AS subject_name
		FROM attendance_records a
		LEFT JOIN students s ON s.id = a.student_id
		WHERE a.tenant_id = $1
		  AND a.subject_kind = 'student'
		  AND a.date = $2
		  AND (a.batch_id = $3 OR a.course_id = $4)
		  AND a.deleted_at IS NULL
		ORDER BY s.full_name ASC
	`

	rows, err := q.Query(ctx, query, tenantID, date, batchID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.SubjectKind, &rec.StudentID, &rec.TeacherID, &rec.BatchID, &rec.CourseID,
			&rec.Date, &rec.CheckInAt, &rec.Status, &rec.IsApproved, &rec.ApprovedBy, &rec.MarkedBy, &rec.Remarks,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.SubjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Query implements attendance.Repository.
func (a *attendanceRepository) Query(ctx context.Context, filter attendance.Filter, tenantID string) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "a.tenant_id = $1 AND a.deleted_at IS NULL"
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.SubjectKind != nil {
		baseWhere += fmt.Sprintf(" AND a.subject_kind = $%d", argIdx)
		args = append(args, *filter.SubjectKind)
		argIdx++
	}
	if filter.StudentID != nil && *filter.StudentID != "" {
		baseWhere += fmt.Sprintf(" AND a.student_id = $%d", argIdx)
		args = append(args, *filter.StudentID)
		argIdx++
	}
	if filter.TeacherID != nil && *filter.TeacherID != "" {
		baseWhere += fmt.Sprintf(" AND a.teacher_id = $%d", argIdx)
		args = append(args, *filter.TeacherID)
		argIdx++
	}
	if filter.BranchID != nil && *filter.BranchID != "" {
		baseWhere += fmt.Sprintf(" AND t.branch_id = $%d", argIdx)
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.ApprovedOnly {
		baseWhere += " AND a.is_approved = true"
	}

	joins := `
		LEFT JOIN students s ON s.id = a.student_id
		LEFT JOIN teachers t ON t.id = a.teacher_id
	`

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendance_records a " + joins + " WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortOrder := "DESC"
	if filter.OrderAsc {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.tenant_id, a.subject_kind, a.student_id, a.teacher_id, a.batch_id, a.course_id,
			   a.date, a.check_in_at, a.status, a.is_approved, a.approved_by, a.marked_by, a.remarks,
			   a.created_at, a.updated_at,
			   COALESCE(s.full_name, t.full_name) AS subject_name
		FROM attendance_records a
		%s
		WHERE %s
		ORDER BY a.date %s, a.created_at %s
	`, joins, baseWhere, sortOrder, sortOrder)

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		selectQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, filter.Limit, (page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.SubjectKind, &rec.StudentID, &rec.TeacherID, &rec.BatchID, &rec.CourseID,
			&rec.Date, &rec.CheckInAt, &rec.Status, &rec.IsApproved, &rec.ApprovedBy, &rec.MarkedBy, &rec.Remarks,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.SubjectName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

// ListPending implements attendance.Repository.
func (a *attendanceRepository) ListPending(ctx context.Context, tenantID string, branchID *string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := `
		a.tenant_id = $1
		AND a.subject_kind = 'teacher'
		AND a.is_approved = false
		AND a.deleted_at IS NULL
	`
	args := []interface{}{tenantID}
	if branchID != nil && *branchID != "" {
		baseWhere += " AND t.branch_id = $2"
		args = append(args, *branchID)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.tenant_id, a.subject_kind, a.student_id, a.teacher_id, a.batch_id, a.course_id,
			   a.date, a.check_in_at, a.status, a.is_approved, a.approved_by, a.marked_by, a.remarks,
			   a.created_at, a.updated_at,
			   t.full_name AS subject_name
		FROM attendance_records a
		LEFT JOIN teachers t ON t.id = a.teacher_id
		WHERE %s
		ORDER BY a.date DESC, a.created_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.SubjectKind, &rec.StudentID, &rec.TeacherID, &rec.BatchID, &rec.CourseID,
			&rec.Date, &rec.CheckInAt, &rec.Status, &rec.IsApproved, &rec.ApprovedBy, &rec.MarkedBy, &rec.Remarks,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.SubjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Approve implements attendance.Repository.
func (a *attendanceRepository) Approve(ctx context.Context, id string, tenantID string, approverID string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET is_approved = true, approved_by = $3, updated_at = now()
		WHERE id = $1 AND tenant_id = $2 AND subject_kind = 'teacher' AND deleted_at IS NULL
		RETURNING id
	`

	var approvedID string
	if err := q.QueryRow(ctx, query, id, tenantID, approverID).Scan(&approvedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to approve attendance record: %w", err)
	}

	return nil
}

// StudentSummary implements attendance.Repository.
func (a *attendanceRepository) StudentSummary(ctx context.Context, studentID string, tenantID string) (attendance.Summary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'present'),
			   COUNT(*) FILTER (WHERE status = 'absent')
		FROM attendance_records
		WHERE tenant_id = $1 AND student_id = $2 AND deleted_at IS NULL
	`

	var summary attendance.Summary
	err := q.QueryRow(ctx, query, tenantID, studentID).Scan(&summary.Total, &summary.Present, &summary.Absent)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize student attendance: %w", err)
	}

	return summary, nil
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}
