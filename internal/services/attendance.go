package services

import (
	"context"
	"errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/repositories"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/types"
)

type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepositoryInterface
	logger         *zap.Logger
}

func NewAttendanceService(attendanceRepo repositories.AttendanceRepositoryInterface, logger *zap.Logger) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo, logger: logger}
}

func attendanceEntityToDTO(entity *entities.Attendance) *dto.AttendanceDTO {
	if entity == nil {
		return nil
	}
	out := &dto.AttendanceDTO{
		ID:      entity.ID,
		UserID:  entity.UserID,
		ClockIn: entity.ClockIn.Format("2006-01-02 15:04:05"),
		Note:    nullStringPtr(entity.Note),
	}
	if entity.ClockOut.Valid {
		s := entity.ClockOut.Time.Format("2006-01-02 15:04:05")
		out.ClockOut = &s
	}
	return out
}

func (s *AttendanceService) GetByUser(ctx context.Context, userID string, filter types.Filter) ([]dto.AttendanceDTO, uint64, error) {
	entries, total, err := s.attendanceRepo.GetByUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]dto.AttendanceDTO, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, *attendanceEntityToDTO(&entries[i]))
	}
	return dtos, total, nil
}

// ClockIn opens a new attendance entry; a user can have at most one
// open entry at a time.
func (s *AttendanceService) ClockIn(ctx context.Context, userID string, payload dto.ClockInDTO) (*dto.AttendanceDTO, error) {
	if _, err := s.attendanceRepo.FindOpenEntry(ctx, userID); err == nil {
		return nil, apperrors.NewInvalidInputError("already clocked in")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	entry, err := s.attendanceRepo.ClockIn(ctx, userID, toNullStringValue(payload.Note))
	if err != nil {
		return nil, err
	}
	return attendanceEntityToDTO(entry), nil
}

func (s *AttendanceService) ClockOut(ctx context.Context, userID string) (*dto.AttendanceDTO, error) {
	open, err := s.attendanceRepo.FindOpenEntry(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidInputError("no open attendance entry")
		}
		return nil, err
	}

	closed, err := s.attendanceRepo.ClockOut(ctx, open.ID)
	if err != nil {
		return nil, err
	}
	return attendanceEntityToDTO(closed), nil
}

func toNullStringValue(p *string) null.String {
	if p == nil || *p == "" {
		return null.String{}
	}
	return null.StringFrom(*p)
}
