package postgresql

import (
	"context"
	"fmt"

	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
)

// Schema is the full database schema. Statements are idempotent so Migrate
// can run against an existing database.
//
// The partial unique index on attendance_records is the authoritative guard
// against duplicate marking: concurrent writers for the same subject/date/
// scope serialize on it, and the loser surfaces a unique violation. Nil
// scope columns fold to the zero UUID so course-scoped student records and
// teacher records (no scope at all) dedupe correctly.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id uuid NOT NULL,
	email text NOT NULL,
	password_hash text NOT NULL,
	role text NOT NULL CHECK (role IN ('admin', 'teacher', 'staff')),
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	deleted_at timestamptz,
	UNIQUE (tenant_id, email)
);

CREATE TABLE IF NOT EXISTS branches (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id uuid NOT NULL,
	name text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	deleted_at timestamptz
);

CREATE TABLE IF NOT EXISTS courses (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id uuid NOT NULL,
	name text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	deleted_at timestamptz
);

CREATE TABLE IF NOT EXISTS batches (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id uuid NOT NULL,
	course_id uuid NOT NULL,
	name text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	deleted_at timestamptz
);

CREATE TABLE IF NOT EXISTS shifts (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id uuid NOT NULL,
	name text NOT NULL,
	start_time text NOT NULL,
	end_time text NOT NULL,
	grace_minutes int NOT NULL DEFAULT 15,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	deleted_at timestamptz
);

CREATE TABLE IF NOT EXISTS teachers (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id uuid NOT NULL,
	user_id uuid,
	full_name text NOT NULL,
	branch_id uuid,
	shift_id uuid,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	deleted_at timestamptz
);

CREATE TABLE IF NOT EXISTS students (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id uuid NOT NULL,
	full_name text NOT NULL,
	batch_id uuid,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	deleted_at timestamptz
);

CREATE TABLE IF NOT EXISTS attendance_records (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id uuid NOT NULL,
	subject_kind text NOT NULL CHECK (subject_kind IN ('student', 'teacher')),
	student_id uuid,
	teacher_id uuid,
	batch_id uuid,
	course_id uuid,
	date date NOT NULL,
	check_in_at timestamptz,
	status text NOT NULL CHECK (status IN ('present', 'absent', 'late', 'excused')),
	is_approved boolean NOT NULL DEFAULT false,
	approved_by uuid,
	marked_by uuid NOT NULL,
	remarks text,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	deleted_at timestamptz,
	CHECK (
		(subject_kind = 'student' AND student_id IS NOT NULL AND teacher_id IS NULL)
		OR (subject_kind = 'teacher' AND teacher_id IS NOT NULL AND student_id IS NULL)
	)
);

CREATE UNIQUE INDEX IF NOT EXISTS attendance_records_subject_scope_date_key
	ON attendance_records (
		tenant_id,
		subject_kind,
		COALESCE(student_id, teacher_id),
		COALESCE(batch_id, '00000000-0000-0000-0000-000000000000'::uuid),
		COALESCE(course_id, '00000000-0000-0000-0000-000000000000'::uuid),
		date
	)
	WHERE deleted_at IS NULL;

CREATE INDEX IF NOT EXISTS attendance_records_pending_idx
	ON attendance_records (tenant_id, date DESC)
	WHERE subject_kind = 'teacher' AND is_approved = false AND deleted_at IS NULL;
`

// Migrate applies the schema.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
