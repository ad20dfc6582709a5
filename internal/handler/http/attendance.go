package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/classtrack/coaching-backend-go/internal/domain/attendance"
	"github.com/classtrack/coaching-backend-go/internal/domain/user"
	"github.com/classtrack/coaching-backend-go/internal/handler/http/response"
	"github.com/classtrack/coaching-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	MarkSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	SelfReport(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	StudentHistory(w http.ResponseWriter, r *http.Request)
	TeacherHistory(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// MarkSession implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkSession(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.MarkSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkSession decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TenantID = caller.tenantID
	req.MarkedBy = caller.userID

	result, err := h.attendanceService.MarkSession(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session attendance recorded", result)
}

// GetSession implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	q := attendance.SessionQuery{
		TenantID: caller.tenantID,
		Date:     r.URL.Query().Get("date"),
	}
	if batchID := r.URL.Query().Get("batch_id"); batchID != "" {
		q.BatchID = &batchID
	}
	if courseID := r.URL.Query().Get("course_id"); courseID != "" {
		q.CourseID = &courseID
	}

	results, err := h.attendanceService.SessionAttendance(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SelfReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) SelfReport(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if caller.teacherID == "" {
		response.HandleError(w, user.ErrTeacherAccessRequired)
		return
	}

	var req attendance.SelfReportRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("SelfReport decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.TenantID = caller.tenantID
	req.TeacherID = caller.teacherID

	result, err := h.attendanceService.SubmitSelfReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance submitted for approval", result)
}

// ListPending implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.ListPendingRequest{TenantID: caller.tenantID}
	if branchID := r.URL.Query().Get("branch_id"); branchID != "" {
		if !validator.IsValidUUID(branchID) {
			response.BadRequest(w, "Invalid branch id", nil)
			return
		}
		req.BranchID = &branchID
	}

	results, err := h.attendanceService.ListPending(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approve implements AttendanceHandler.
func (h *attendanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	recordID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(recordID) {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	req := attendance.ApproveRequest{
		TenantID:   caller.tenantID,
		ApproverID: caller.userID,
		RecordID:   recordID,
	}

	result, err := h.attendanceService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance approved", result)
}

// StudentHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) StudentHistory(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	studentID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(studentID) {
		response.BadRequest(w, "Invalid student id", nil)
		return
	}

	q := attendance.StudentHistoryQuery{
		TenantID:  caller.tenantID,
		StudentID: studentID,
	}

	result, err := h.attendanceService.StudentHistory(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TeacherHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) TeacherHistory(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.TeacherHistoryFilter{TenantID: caller.tenantID}

	if teacherID := r.URL.Query().Get("teacher_id"); teacherID != "" {
		filter.TeacherID = &teacherID
	}
	if branchID := r.URL.Query().Get("branch_id"); branchID != "" {
		filter.BranchID = &branchID
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	filter.Page = page

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	filter.Limit = limit

	result, err := h.attendanceService.TeacherHistory(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}
