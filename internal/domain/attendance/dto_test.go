package attendance

import (
	"testing"
	"time"

	"github.com/classtrack/coaching-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

const (
	testBatchID   = "11111111-1111-4111-8111-111111111111"
	testCourseID  = "22222222-2222-4222-8222-222222222222"
	testStudentID = "33333333-3333-4333-8333-333333333333"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range StatusValues {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(status))
	}

	_, err := ParseStatus("holiday")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)

	_, err = ParseStatus("Present")
	assert.Error(t, err)
}

func TestParseSubjectKind(t *testing.T) {
	kind, err := ParseSubjectKind("student")
	require.NoError(t, err)
	assert.Equal(t, SubjectStudent, kind)

	kind, err = ParseSubjectKind("teacher")
	require.NoError(t, err)
	assert.Equal(t, SubjectTeacher, kind)

	_, err = ParseSubjectKind("staff")
	assert.Error(t, err)
}

func TestMarkSessionRequest_Validate_ScopeRequired(t *testing.T) {
	base := MarkSessionRequest{
		Date:  "2026-03-02",
		Items: []MarkItem{{StudentID: testStudentID, Status: "present"}},
	}

	// Neither scope set
	req := base
	assert.ErrorIs(t, req.Validate(), ErrSessionScopeRequired)

	// Both scopes set
	req = base
	req.BatchID = strPtr(testBatchID)
	req.CourseID = strPtr(testCourseID)
	assert.ErrorIs(t, req.Validate(), ErrSessionScopeRequired)

	// Empty strings count as unset
	req = base
	req.BatchID = strPtr("")
	assert.ErrorIs(t, req.Validate(), ErrSessionScopeRequired)

	// Exactly one set is fine
	req = base
	req.BatchID = strPtr(testBatchID)
	assert.NoError(t, req.Validate())

	req = base
	req.CourseID = strPtr(testCourseID)
	assert.NoError(t, req.Validate())
}

func TestMarkSessionRequest_Validate_Fields(t *testing.T) {
	req := MarkSessionRequest{
		BatchID: strPtr(testBatchID),
		Date:    "02-03-2026",
		Items:   []MarkItem{{StudentID: testStudentID, Status: "present"}},
	}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "date")

	req = MarkSessionRequest{
		BatchID: strPtr(testBatchID),
		Date:    "2026-03-02",
	}
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "attendance_items")

	req = MarkSessionRequest{
		BatchID: strPtr(testBatchID),
		Date:    "2026-03-02",
		Items:   []MarkItem{{StudentID: testStudentID, Status: "sleeping"}},
	}
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "attendance_items.status")

	req = MarkSessionRequest{
		BatchID: strPtr("not-a-uuid"),
		Date:    "2026-03-02",
		Items:   []MarkItem{{StudentID: testStudentID, Status: "present"}},
	}
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "batch_id")

	req = MarkSessionRequest{
		BatchID: strPtr(testBatchID),
		Date:    "2026-03-02",
		Items:   []MarkItem{{StudentID: "s1", Status: "present"}},
	}
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "attendance_items.student_id")
}

func TestSelfReportRequest_Validate(t *testing.T) {
	req := SelfReportRequest{}
	assert.NoError(t, req.Validate())

	req = SelfReportRequest{Date: strPtr("2026-03-02"), CheckInTime: strPtr("09:05")}
	assert.NoError(t, req.Validate())

	req = SelfReportRequest{Date: strPtr("yesterday")}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "date")

	req = SelfReportRequest{CheckInTime: strPtr("9am")}
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "check_in_time")
}

func TestSelfReportRequest_CheckInAt(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 30, 45, 0, time.UTC)

	// Everything defaulted
	req := SelfReportRequest{}
	assert.Equal(t, now, req.CheckInAt(now))

	// Explicit date, current clock
	req = SelfReportRequest{Date: strPtr("2026-03-01")}
	got := req.CheckInAt(now)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 45, 0, time.UTC), got)

	// Explicit clock, current date
	req = SelfReportRequest{CheckInTime: strPtr("09:05")}
	got = req.CheckInAt(now)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC), got)

	// Both explicit
	req = SelfReportRequest{Date: strPtr("2026-02-28"), CheckInTime: strPtr("22:15")}
	got = req.CheckInAt(now)
	assert.Equal(t, time.Date(2026, 2, 28, 22, 15, 0, 0, time.UTC), got)
}

func TestSessionQuery_Validate(t *testing.T) {
	q := SessionQuery{Date: "2026-03-02"}
	assert.ErrorIs(t, q.Validate(), ErrSessionScopeRequired)

	q = SessionQuery{BatchID: strPtr(testBatchID), Date: "not-a-date"}
	var errs validator.ValidationErrors
	require.ErrorAs(t, q.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "date")

	q = SessionQuery{BatchID: strPtr("b1"), Date: "2026-03-02"}
	require.ErrorAs(t, q.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "batch_id")

	q = SessionQuery{CourseID: strPtr(testCourseID), Date: "2026-03-02"}
	assert.NoError(t, q.Validate())
}

func TestTeacherHistoryFilter_Validate(t *testing.T) {
	f := TeacherHistoryFilter{}
	assert.NoError(t, f.Validate())

	f = TeacherHistoryFilter{StartDate: strPtr("03/02/2026")}
	var errs validator.ValidationErrors
	require.ErrorAs(t, f.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "start_date")

	f = TeacherHistoryFilter{Page: -1, Limit: -5}
	require.ErrorAs(t, f.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "page")
	assert.Contains(t, errs.ToMap(), "limit")

	f = TeacherHistoryFilter{TeacherID: strPtr("t1"), BranchID: strPtr("b1")}
	require.ErrorAs(t, f.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "teacher_id")
	assert.Contains(t, errs.ToMap(), "branch_id")
}
