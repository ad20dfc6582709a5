package attendance

import (
	"context"
	"time"
)

// Filter narrows ledger queries. Zero Page/Limit disables pagination.
type Filter struct {
	SubjectKind  *SubjectKind
	StudentID    *string
	TeacherID    *string
	BranchID     *string
	StartDate    *string // YYYY-MM-DD
	EndDate      *string // YYYY-MM-DD
	ApprovedOnly bool

	Page  int
	Limit int

	OrderAsc bool
}

// Repository is the attendance ledger: idempotent writes keyed by
// (tenant, subject kind, subject, scope, date), plus the read paths the
// services need. All methods carry tenant isolation and skip soft-deleted
// rows. The storage layer's partial unique index on the key is the
// authoritative duplicate guard; the lookups here are the fast path.
type Repository interface {
	// Upsert finds a live record for key and overwrites status/remarks/
	// marker in place, or inserts a new record with the kind-appropriate
	// approval default. Student rows are forced approved by their marker;
	// teacher rows keep whatever approval state they had. Returns the
	// record and whether it was created. A live record under the same key
	// with a different subject kind fails with ErrSubjectKindMismatch.
	Upsert(ctx context.Context, key Key, mut Mutation) (Record, bool, error)

	// Create inserts a record as-is (teacher self-report path). A unique
	// key violation surfaces as ErrAlreadySubmitted.
	Create(ctx context.Context, rec Record) (Record, error)

	Find(ctx context.Context, key Key) (*Record, error)
	GetByID(ctx context.Context, id string, tenantID string) (Record, error)

	// ListBySession returns student attendance for one batch- or
	// course-scoped session on a date, enriched with student names.
	ListBySession(ctx context.Context, tenantID string, batchID *string, courseID *string, date time.Time) ([]Record, error)

	// Query returns records matching filter with the total count.
	Query(ctx context.Context, filter Filter, tenantID string) ([]Record, int64, error)

	// ListPending returns unapproved teacher records, newest first,
	// optionally restricted to one branch.
	ListPending(ctx context.Context, tenantID string, branchID *string) ([]Record, error)

	// Approve marks a teacher record approved by approverID. Approving an
	// already-approved record is harmless.
	Approve(ctx context.Context, id string, tenantID string, approverID string) error

	StudentSummary(ctx context.Context, studentID string, tenantID string) (Summary, error)
}
