package services

import (
	"context"

	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/repositories"
	"pulse/pkg/types"
)

type DepartmentService struct {
	departmentRepo repositories.DepartmentRepositoryInterface
	logger         *zap.Logger
}

func NewDepartmentService(departmentRepo repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo, logger: logger}
}

func departmentEntityToDTO(entity *entities.Department, headcount uint64) *dto.DepartmentDTO {
	if entity == nil {
		return nil
	}
	return &dto.DepartmentDTO{
		ID:        entity.ID,
		Name:      entity.Name,
		HeadID:    nullStringPtr(entity.HeadID),
		IsActive:  entity.IsActive,
		Headcount: headcount,
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, filter types.Filter) ([]dto.DepartmentDTO, uint64, error) {
	departments, total, err := s.departmentRepo.GetDepartments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	headcounts, err := s.departmentRepo.GetHeadcounts(ctx)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.DepartmentDTO, 0, len(departments))
	for i := range departments {
		dtos = append(dtos, *departmentEntityToDTO(&departments[i], headcounts[departments[i].ID]))
	}
	return dtos, total, nil
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id int64) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepo.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	headcounts, err := s.departmentRepo.GetHeadcounts(ctx)
	if err != nil {
		return nil, err
	}
	return departmentEntityToDTO(department, headcounts[department.ID]), nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	created, err := s.departmentRepo.CreateDepartment(ctx, entities.Department{
		Name:   payload.Name,
		HeadID: toNullString(payload.HeadID),
	})
	if err != nil {
		return nil, err
	}
	return departmentEntityToDTO(created, 0), nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	updated, err := s.departmentRepo.UpdateDepartment(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return s.FindDepartment(ctx, updated.ID)
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.DeleteDepartment(ctx, id)
}
