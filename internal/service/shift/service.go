package shift

import (
	"context"

	"github.com/classtrack/coaching-backend-go/internal/domain/shift"
	"github.com/classtrack/coaching-backend-go/internal/domain/teacher"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	teacher.TeacherRepository
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	startTime, err := shift.ParseClock(req.StartTime)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	endTime, err := shift.ParseClock(req.EndTime)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	grace := shift.DefaultGraceMinutes
	if req.GraceMinutes != nil {
		grace = *req.GraceMinutes
	}

	def := shift.Definition{
		TenantID:     req.TenantID,
		Name:         req.Name,
		StartTime:    startTime,
		EndTime:      endTime,
		GraceMinutes: grace,
	}

	created, err := s.ShiftRepository.Create(ctx, def)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(created), nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, tenantID string) ([]shift.ShiftResponse, error) {
	defs, err := s.ShiftRepository.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, shift.NewShiftResponse(def))
	}
	return responses, nil
}

// UpdateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	def, err := s.ShiftRepository.GetByID(ctx, req.ShiftID, req.TenantID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		def.Name = *req.Name
	}
	if req.StartTime != nil {
		startTime, err := shift.ParseClock(*req.StartTime)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		def.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := shift.ParseClock(*req.EndTime)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		def.EndTime = endTime
	}
	if req.GraceMinutes != nil {
		def.GraceMinutes = *req.GraceMinutes
	}

	updated, err := s.ShiftRepository.Update(ctx, def)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(updated), nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string, tenantID string) error {
	return s.ShiftRepository.SoftDelete(ctx, id, tenantID)
}

// AssignToTeacher implements shift.ShiftService.
func (s *ShiftServiceImpl) AssignToTeacher(ctx context.Context, req shift.AssignShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID, req.TenantID); err != nil {
		return err
	}
	if _, err := s.TeacherRepository.GetByID(ctx, req.TeacherID, req.TenantID); err != nil {
		return err
	}

	return s.TeacherRepository.SetShift(ctx, req.TeacherID, &req.ShiftID, req.TenantID)
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	teacherRepo teacher.TeacherRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:                db,
		ShiftRepository:   shiftRepo,
		TeacherRepository: teacherRepo,
	}
}
