package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/events"
	"pulse/internal/repositories"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/eventbus"
	"pulse/pkg/types"
)

type AssetService struct {
	assetRepo repositories.AssetRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
	bus       *eventbus.Bus
	logger    *zap.Logger
}

func NewAssetService(
	assetRepo repositories.AssetRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *AssetService {
	return &AssetService{assetRepo: assetRepo, userRepo: userRepo, bus: bus, logger: logger}
}

func assetEntityToDTO(entity *entities.Asset) *dto.AssetDTO {
	if entity == nil {
		return nil
	}
	return &dto.AssetDTO{
		ID:         entity.ID,
		Tag:        entity.Tag,
		Name:       entity.Name,
		Serial:     nullStringPtr(entity.Serial),
		Status:     entity.Status,
		AssignedTo: nullStringPtr(entity.AssignedTo),
	}
}

func (s *AssetService) GetAssets(ctx context.Context, filter types.Filter) ([]dto.AssetDTO, uint64, error) {
	assets, total, err := s.assetRepo.GetAssets(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]dto.AssetDTO, 0, len(assets))
	for i := range assets {
		dtos = append(dtos, *assetEntityToDTO(&assets[i]))
	}
	return dtos, total, nil
}

func (s *AssetService) FindAsset(ctx context.Context, id int64) (*dto.AssetDTO, error) {
	asset, err := s.assetRepo.FindAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	return assetEntityToDTO(asset), nil
}

func (s *AssetService) CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (*dto.AssetDTO, error) {
	created, err := s.assetRepo.CreateAsset(ctx, entities.Asset{
		Tag:    payload.Tag,
		Name:   payload.Name,
		Serial: toNullString(payload.Serial),
		Status: entities.AssetStatusInStock,
	})
	if err != nil {
		return nil, err
	}
	return assetEntityToDTO(created), nil
}

func (s *AssetService) UpdateAsset(ctx context.Context, id int64, payload dto.UpdateAssetDTO) (*dto.AssetDTO, error) {
	existing, err := s.assetRepo.FindAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.Serial != nil {
		existing.Serial = null.StringFrom(*payload.Serial)
	}
	if payload.Status != nil {
		existing.Status = *payload.Status
	}

	updated, err := s.assetRepo.UpdateAsset(ctx, existing)
	if err != nil {
		return nil, err
	}
	return assetEntityToDTO(updated), nil
}

// AssignAsset hands an asset to a user and notifies them.
func (s *AssetService) AssignAsset(ctx context.Context, id int64, payload dto.AssignAssetDTO) (*dto.AssetDTO, error) {
	asset, err := s.assetRepo.FindAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset.Status == entities.AssetStatusRetired {
		return nil, apperrors.NewInvalidInputError("asset %s is retired", asset.Tag)
	}

	user, err := s.userRepo.FindUser(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewInvalidInputError("cannot assign an asset to an inactive user")
	}

	updated, err := s.assetRepo.SetAssignment(ctx, id, null.StringFrom(user.ID), entities.AssetStatusAssigned)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.AssetAssignedEvent{
		AssetID:   updated.ID,
		AssetTag:  updated.Tag,
		AssetName: updated.Name,
		UserID:    user.ID,
	})
	return assetEntityToDTO(updated), nil
}

func (s *AssetService) ReturnAsset(ctx context.Context, id int64) (*dto.AssetDTO, error) {
	asset, err := s.assetRepo.FindAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if !asset.AssignedTo.Valid {
		return nil, apperrors.NewInvalidInputError("asset %s is not assigned", asset.Tag)
	}

	updated, err := s.assetRepo.SetAssignment(ctx, id, null.String{}, entities.AssetStatusInStock)
	if err != nil {
		return nil, err
	}
	return assetEntityToDTO(updated), nil
}

func (s *AssetService) DeleteAsset(ctx context.Context, id int64) error {
	return s.assetRepo.DeleteAsset(ctx, id)
}
