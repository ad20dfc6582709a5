package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/classtrack/coaching-backend-go/internal/domain/attendance"
	"github.com/classtrack/coaching-backend-go/internal/domain/master/batch"
	"github.com/classtrack/coaching-backend-go/internal/domain/master/branch"
	"github.com/classtrack/coaching-backend-go/internal/domain/master/course"
	"github.com/classtrack/coaching-backend-go/internal/domain/shift"
	"github.com/classtrack/coaching-backend-go/internal/domain/student"
	"github.com/classtrack/coaching-backend-go/internal/domain/teacher"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/classtrack/coaching-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	batch.BatchRepository
	course.CourseRepository
	branch.BranchRepository
	student.StudentRepository
	teacher.TeacherRepository
	shift.ShiftRepository
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:          rec.ID,
		SubjectKind: string(rec.SubjectKind),
		StudentID:   rec.StudentID,
		TeacherID:   rec.TeacherID,
		SubjectName: rec.SubjectName,
		BatchID:     rec.BatchID,
		CourseID:    rec.CourseID,
		Date:        rec.Date.Format("2006-01-02"),
		CheckInAt:   timePtrToString(rec.CheckInAt),
		Status:      string(rec.Status),
		IsApproved:  rec.IsApproved,
		ApprovedBy:  rec.ApprovedBy,
		MarkedBy:    rec.MarkedBy,
		Remarks:     rec.Remarks,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapRecordsToResponses(recs []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses
}

// checkScope verifies that the referenced batch or course exists in the
// tenant. Exactly one of the two is set; Validate enforces that upstream.
func (a *AttendanceServiceImpl) checkScope(ctx context.Context, batchID, courseID *string, tenantID string) error {
	if batchID != nil && *batchID != "" {
		if _, err := a.BatchRepository.GetByID(ctx, *batchID, tenantID); err != nil {
			return err
		}
		return nil
	}
	if _, err := a.CourseRepository.GetByID(ctx, *courseID, tenantID); err != nil {
		return err
	}
	return nil
}

// MarkSession implements attendance.Service.
func (a *AttendanceServiceImpl) MarkSession(ctx context.Context, req attendance.MarkSessionRequest) (attendance.MarkSessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkSessionResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.MarkSessionResponse{}, fmt.Errorf("failed to parse session date: %w", err)
	}

	if err := a.checkScope(ctx, req.BatchID, req.CourseID, req.TenantID); err != nil {
		return attendance.MarkSessionResponse{}, err
	}

	var created, updated int
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		for _, item := range req.Items {
			status, err := attendance.ParseStatus(item.Status)
			if err != nil {
				return fmt.Errorf("failed to parse attendance status: %w", err)
			}

			key := attendance.Key{
				TenantID:    req.TenantID,
				SubjectKind: attendance.SubjectStudent,
				SubjectID:   item.StudentID,
				BatchID:     req.BatchID,
				CourseID:    req.CourseID,
				Date:        date,
			}
			mut := attendance.Mutation{
				Status:   status,
				Remarks:  item.Remarks,
				MarkedBy: req.MarkedBy,
			}

			_, wasCreated, err := a.Repository.Upsert(txCtx, key, mut)
			if err != nil {
				return err
			}
			if wasCreated {
				created++
			} else {
				updated++
			}
		}

		return nil
	})
	if err != nil {
		return attendance.MarkSessionResponse{}, err
	}

	return attendance.MarkSessionResponse{Created: created, Updated: updated}, nil
}

// SubmitSelfReport implements attendance.Service.
func (a *AttendanceServiceImpl) SubmitSelfReport(ctx context.Context, req attendance.SelfReportRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	teach, err := a.TeacherRepository.GetByID(ctx, req.TeacherID, req.TenantID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	checkInAt := req.CheckInAt(time.Now())
	date := time.Date(checkInAt.Year(), checkInAt.Month(), checkInAt.Day(), 0, 0, 0, 0, time.UTC)

	key := attendance.Key{
		TenantID:    req.TenantID,
		SubjectKind: attendance.SubjectTeacher,
		SubjectID:   req.TeacherID,
		Date:        date,
	}
	existing, err := a.Repository.Find(ctx, key)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadySubmitted
	}

	var def *shift.Definition
	if teach.ShiftID != nil {
		found, err := a.ShiftRepository.GetByID(ctx, *teach.ShiftID, req.TenantID)
		if err != nil {
			if !errors.Is(err, shift.ErrShiftNotFound) {
				return attendance.RecordResponse{}, err
			}
			// A deleted shift no longer binds the teacher.
		} else {
			def = &found
		}
	}

	status := shift.Evaluate(shift.ClockOf(checkInAt), def)

	rec := attendance.Record{
		TenantID:    req.TenantID,
		SubjectKind: attendance.SubjectTeacher,
		TeacherID:   &req.TeacherID,
		Date:        date,
		CheckInAt:   &checkInAt,
		Status:      status,
		IsApproved:  false,
		MarkedBy:    req.TeacherID,
		Remarks:     req.Remarks,
	}

	saved, err := a.Repository.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	saved.SubjectName = &teach.FullName
	return mapRecordToResponse(saved), nil
}

// ListPending implements attendance.Service.
func (a *AttendanceServiceImpl) ListPending(ctx context.Context, req attendance.ListPendingRequest) ([]attendance.RecordResponse, error) {
	if req.BranchID != nil && *req.BranchID != "" {
		if _, err := a.BranchRepository.GetByID(ctx, *req.BranchID, req.TenantID); err != nil {
			return nil, err
		}
	}

	recs, err := a.Repository.ListPending(ctx, req.TenantID, req.BranchID)
	if err != nil {
		return nil, err
	}

	return mapRecordsToResponses(recs), nil
}

// Approve implements attendance.Service.
func (a *AttendanceServiceImpl) Approve(ctx context.Context, req attendance.ApproveRequest) (attendance.RecordResponse, error) {
	if err := a.Repository.Approve(ctx, req.RecordID, req.TenantID, req.ApproverID); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.Repository.GetByID(ctx, req.RecordID, req.TenantID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return mapRecordToResponse(rec), nil
}

// SessionAttendance implements attendance.Service.
func (a *AttendanceServiceImpl) SessionAttendance(ctx context.Context, q attendance.SessionQuery) ([]attendance.RecordResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session date: %w", err)
	}

	if err := a.checkScope(ctx, q.BatchID, q.CourseID, q.TenantID); err != nil {
		return nil, err
	}

	recs, err := a.Repository.ListBySession(ctx, q.TenantID, q.BatchID, q.CourseID, date)
	if err != nil {
		return nil, err
	}

	return mapRecordsToResponses(recs), nil
}

// StudentHistory implements attendance.Service.
func (a *AttendanceServiceImpl) StudentHistory(ctx context.Context, q attendance.StudentHistoryQuery) (attendance.StudentHistoryResponse, error) {
	if _, err := a.StudentRepository.GetByID(ctx, q.StudentID, q.TenantID); err != nil {
		return attendance.StudentHistoryResponse{}, err
	}

	kind := attendance.SubjectStudent
	filter := attendance.Filter{
		SubjectKind: &kind,
		StudentID:   &q.StudentID,
		OrderAsc:    true,
	}

	recs, _, err := a.Repository.Query(ctx, filter, q.TenantID)
	if err != nil {
		return attendance.StudentHistoryResponse{}, err
	}

	summary, err := a.Repository.StudentSummary(ctx, q.StudentID, q.TenantID)
	if err != nil {
		return attendance.StudentHistoryResponse{}, err
	}
	if summary.Total > 0 {
		summary.Percentage = math.Round(float64(summary.Present)/float64(summary.Total)*100*100) / 100
	}

	return attendance.StudentHistoryResponse{
		Records: mapRecordsToResponses(recs),
		Summary: summary,
	}, nil
}

// TeacherHistory implements attendance.Service.
func (a *AttendanceServiceImpl) TeacherHistory(ctx context.Context, filter attendance.TeacherHistoryFilter) (attendance.ListTeacherHistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListTeacherHistoryResponse{}, err
	}

	if filter.TeacherID != nil && *filter.TeacherID != "" {
		if _, err := a.TeacherRepository.GetByID(ctx, *filter.TeacherID, filter.TenantID); err != nil {
			return attendance.ListTeacherHistoryResponse{}, err
		}
	}
	if filter.BranchID != nil && *filter.BranchID != "" {
		if _, err := a.BranchRepository.GetByID(ctx, *filter.BranchID, filter.TenantID); err != nil {
			return attendance.ListTeacherHistoryResponse{}, err
		}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	kind := attendance.SubjectTeacher
	repoFilter := attendance.Filter{
		SubjectKind:  &kind,
		TeacherID:    filter.TeacherID,
		BranchID:     filter.BranchID,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		ApprovedOnly: true,
		Page:         page,
		Limit:        limit,
	}

	recs, total, err := a.Repository.Query(ctx, repoFilter, filter.TenantID)
	if err != nil {
		return attendance.ListTeacherHistoryResponse{}, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return attendance.ListTeacherHistoryResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Records:    mapRecordsToResponses(recs),
	}, nil
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	batchRepo batch.BatchRepository,
	courseRepo course.CourseRepository,
	branchRepo branch.BranchRepository,
	studentRepo student.StudentRepository,
	teacherRepo teacher.TeacherRepository,
	shiftRepo shift.ShiftRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:                db,
		Repository:        attendanceRepo,
		BatchRepository:   batchRepo,
		CourseRepository:  courseRepo,
		BranchRepository:  branchRepo,
		StudentRepository: studentRepo,
		TeacherRepository: teacherRepo,
		ShiftRepository:   shiftRepo,
	}
}
