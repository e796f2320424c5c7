package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/events"
	"pulse/internal/repositories"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/eventbus"
	"pulse/pkg/types"
)

type TransferService struct {
	transferRepo   repositories.TransferRepositoryInterface
	userRepo       repositories.UserRepositoryInterface
	departmentRepo repositories.DepartmentRepositoryInterface
	bus            *eventbus.Bus
	logger         *zap.Logger
}

func NewTransferService(
	transferRepo repositories.TransferRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	departmentRepo repositories.DepartmentRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *TransferService {
	return &TransferService{
		transferRepo:   transferRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		bus:            bus,
		logger:         logger,
	}
}

func transferEntityToDTO(entity *entities.Transfer) *dto.TransferDTO {
	if entity == nil {
		return nil
	}
	return &dto.TransferDTO{
		ID:               entity.ID,
		UserID:           entity.UserID,
		FromDepartmentID: entity.FromDepartmentID,
		ToDepartmentID:   entity.ToDepartmentID,
		EffectiveDate:    entity.EffectiveDate.Format("2006-01-02"),
		Note:             nullStringPtr(entity.Note),
	}
}

func (s *TransferService) GetTransfers(ctx context.Context, filter types.Filter) ([]dto.TransferDTO, uint64, error) {
	transfers, total, err := s.transferRepo.GetTransfers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]dto.TransferDTO, 0, len(transfers))
	for i := range transfers {
		dtos = append(dtos, *transferEntityToDTO(&transfers[i]))
	}
	return dtos, total, nil
}

// CreateTransfer records the move and applies it to the user in one
// go: the transfer history row is the audit trail, the department
// update is the effect.
func (s *TransferService) CreateTransfer(ctx context.Context, payload dto.CreateTransferDTO) (*dto.TransferDTO, error) {
	user, err := s.userRepo.FindUser(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewInvalidInputError("cannot transfer an inactive user")
	}

	target, err := s.departmentRepo.FindDepartment(ctx, payload.ToDepartmentID)
	if err != nil {
		return nil, err
	}
	if user.DepartmentID != nil && *user.DepartmentID == target.ID {
		return nil, apperrors.NewInvalidInputError("user is already in %s", target.Name)
	}

	effectiveDate, err := time.Parse("2006-01-02", payload.EffectiveDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid effective date %q", payload.EffectiveDate)
	}

	created, err := s.transferRepo.CreateTransfer(ctx, entities.Transfer{
		UserID:           user.ID,
		FromDepartmentID: user.DepartmentID,
		ToDepartmentID:   target.ID,
		EffectiveDate:    effectiveDate,
		Note:             toNullStringValue(payload.Note),
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateDepartment(ctx, user.ID, target.ID); err != nil {
		return nil, err
	}

	fromName := ""
	if user.DepartmentName.Valid {
		fromName = user.DepartmentName.String
	}
	s.bus.Publish(ctx, events.TransferAppliedEvent{
		UserID:         user.ID,
		UserName:       user.FullName(),
		ToDepartment:   target.Name,
		FromDepartment: fromName,
		ManagerID:      user.ReportsTo.String,
	})

	return transferEntityToDTO(created), nil
}
