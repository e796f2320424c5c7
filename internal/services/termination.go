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

type TerminationService struct {
	terminationRepo repositories.TerminationRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	cacheRepo       repositories.CacheRepositoryInterface
	bus             *eventbus.Bus
	logger          *zap.Logger
}

func NewTerminationService(
	terminationRepo repositories.TerminationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *TerminationService {
	return &TerminationService{
		terminationRepo: terminationRepo,
		userRepo:        userRepo,
		cacheRepo:       cacheRepo,
		bus:             bus,
		logger:          logger,
	}
}

func terminationEntityToDTO(entity *entities.Termination) *dto.TerminationDTO {
	if entity == nil {
		return nil
	}
	return &dto.TerminationDTO{
		ID:            entity.ID,
		UserID:        entity.UserID,
		Reason:        entity.Reason,
		EffectiveDate: entity.EffectiveDate.Format("2006-01-02"),
		Note:          nullStringPtr(entity.Note),
	}
}

func (s *TerminationService) GetTerminations(ctx context.Context, filter types.Filter) ([]dto.TerminationDTO, uint64, error) {
	terminations, total, err := s.terminationRepo.GetTerminations(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]dto.TerminationDTO, 0, len(terminations))
	for i := range terminations {
		dtos = append(dtos, *terminationEntityToDTO(&terminations[i]))
	}
	return dtos, total, nil
}

// CreateTermination deactivates the user and moves their direct
// reports up to the departing user's own manager, so nobody is left
// reporting to an inactive account.
func (s *TerminationService) CreateTermination(ctx context.Context, payload dto.CreateTerminationDTO) (*dto.TerminationDTO, error) {
	user, err := s.userRepo.FindUser(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewInvalidInputError("user is already terminated")
	}

	effectiveDate, err := time.Parse("2006-01-02", payload.EffectiveDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid effective date %q", payload.EffectiveDate)
	}

	promoted, err := s.userRepo.PromoteReports(ctx, user.ID, user.ReportsTo)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Deactivate(ctx, user.ID); err != nil {
		return nil, err
	}

	created, err := s.terminationRepo.CreateTermination(ctx, entities.Termination{
		UserID:        user.ID,
		Reason:        payload.Reason,
		Note:          toNullStringValue(payload.Note),
		EffectiveDate: effectiveDate,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateOrgChart(ctx)
	s.bus.Publish(ctx, events.TerminationAppliedEvent{
		UserID:          user.ID,
		UserName:        user.FullName(),
		ManagerID:       user.ReportsTo.String,
		PromotedReports: promoted,
	})

	s.logger.Info("termination applied",
		zap.String("user_id", user.ID),
		zap.Int64("promoted_reports", promoted))
	return terminationEntityToDTO(created), nil
}

func (s *TerminationService) invalidateOrgChart(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, orgChartCacheKey); err != nil {
		s.logger.Warn("could not invalidate org chart cache", zap.Error(err))
	}
}
