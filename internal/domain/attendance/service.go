package attendance

import "context"

// Service defines the attendance business operations.
type Service interface {
	// MarkSession bulk-marks a roster for one session. All items commit in
	// a single transaction or none do.
	MarkSession(ctx context.Context, req MarkSessionRequest) (MarkSessionResponse, error)

	// SubmitSelfReport records a teacher's own attendance, computing the
	// status from their assigned shift. One submission per day.
	SubmitSelfReport(ctx context.Context, req SelfReportRequest) (RecordResponse, error)

	// ListPending returns unapproved teacher records, newest first.
	ListPending(ctx context.Context, req ListPendingRequest) ([]RecordResponse, error)

	// Approve transitions a teacher record from pending to approved.
	Approve(ctx context.Context, req ApproveRequest) (RecordResponse, error)

	// SessionAttendance returns student attendance for one session,
	// enriched with student names.
	SessionAttendance(ctx context.Context, q SessionQuery) ([]RecordResponse, error)

	// StudentHistory returns a student's records plus the presence summary.
	StudentHistory(ctx context.Context, q StudentHistoryQuery) (StudentHistoryResponse, error)

	// TeacherHistory returns paginated, approved-only teacher records.
	TeacherHistory(ctx context.Context, filter TeacherHistoryFilter) (ListTeacherHistoryResponse, error)
}
