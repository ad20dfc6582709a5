package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/classtrack/coaching-backend-go/internal/domain/shift"
	"github.com/classtrack/coaching-backend-go/internal/handler/http/response"
	"github.com/classtrack/coaching-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// Create implements ShiftHandler.
func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TenantID = caller.tenantID

	result, err := h.shiftService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", result)
}

// List implements ShiftHandler.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.shiftService.ListShifts(r.Context(), caller.tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements ShiftHandler.
func (h *shiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(shiftID) {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TenantID = caller.tenantID
	req.ShiftID = shiftID

	result, err := h.shiftService.UpdateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", result)
}

// Delete implements ShiftHandler.
func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(shiftID) {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	if err := h.shiftService.DeleteShift(r.Context(), shiftID, caller.tenantID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// Assign implements ShiftHandler.
func (h *shiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	caller, err := claimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(shiftID) {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TenantID = caller.tenantID
	req.ShiftID = shiftID

	if err := h.shiftService.AssignToTeacher(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assigned", nil)
}
