package services

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/hierarchy"
	"pulse/internal/repositories"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/types"
)

type UserService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *UserService {
	return &UserService{userRepo: userRepo, cacheRepo: cacheRepo, logger: logger}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func nullStringPtr(ns null.String) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func userEntityToDTO(entity *entities.User) *dto.UserDTO {
	if entity == nil {
		return nil
	}

	out := &dto.UserDTO{
		ID:             entity.ID,
		FirstName:      entity.FirstName,
		LastName:       nullStringPtr(entity.LastName),
		FullName:       entity.FullName(),
		Email:          entity.Email,
		Role:           string(entity.Role),
		RoleLabel:      entity.Role.Label(),
		Title:          nullStringPtr(entity.Title),
		DepartmentID:   entity.DepartmentID,
		DepartmentName: nullStringPtr(entity.DepartmentName),
		ReportsTo:      nullStringPtr(entity.ReportsTo),
		IsActive:       entity.IsActive,
	}
	if entity.CreatedAt != nil {
		out.CreatedAt = entity.CreatedAt.Format("2006-01-02 15:04:05")
	}
	if entity.UpdatedAt != nil {
		out.UpdatedAt = entity.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return out
}

func userEntitiesToDTOs(users []entities.User) []dto.UserDTO {
	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *userEntityToDTO(&users[i]))
	}
	return dtos
}

func (s *UserService) invalidateChart(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, orgChartCacheKey); err != nil {
		s.logger.Warn("failed to invalidate org-chart cache", zap.Error(err))
	}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return userEntitiesToDTOs(users), total, nil
}

func (s *UserService) FindUser(ctx context.Context, id string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return userEntityToDTO(user), nil
}

func toNullString(p *string) null.String {
	if p == nil {
		return null.String{}
	}
	return null.StringFrom(*p)
}

// CreateUser is the onboarding entry point: a fresh id, a hashed
// password, and must_change_password until the first login completes.
func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	role, ok := hierarchy.ParseRole(payload.Role)
	if !ok {
		return nil, apperrors.NewInvalidInputError("unknown role %q", payload.Role)
	}

	hashedPassword, err := hashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	userEntity := &entities.User{
		ID:                 uuid.NewString(),
		FirstName:          payload.FirstName,
		LastName:           toNullString(payload.LastName),
		Email:              payload.Email,
		Password:           hashedPassword,
		Role:               role,
		Title:              toNullString(payload.Title),
		DepartmentID:       payload.DepartmentID,
		ReportsTo:          toNullString(payload.ReportsTo),
		IsActive:           true,
		MustChangePassword: true,
	}

	created, err := s.userRepo.CreateUser(ctx, userEntity)
	if err != nil {
		return nil, err
	}
	s.invalidateChart(ctx)
	return userEntityToDTO(created), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.FirstName != nil {
		existing.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		existing.LastName = null.StringFrom(*payload.LastName)
	}
	if payload.Email != nil {
		existing.Email = *payload.Email
	}
	if payload.Role != nil {
		role, ok := hierarchy.ParseRole(*payload.Role)
		if !ok {
			return nil, apperrors.NewInvalidInputError("unknown role %q", *payload.Role)
		}
		existing.Role = role
	}
	if payload.Title != nil {
		existing.Title = null.StringFrom(*payload.Title)
	}
	if payload.DepartmentID != nil {
		existing.DepartmentID = payload.DepartmentID
	}
	if payload.ReportsTo != nil {
		if *payload.ReportsTo == id {
			return nil, apperrors.NewInvalidInputError("a user cannot report to themselves")
		}
		existing.ReportsTo = null.StringFrom(*payload.ReportsTo)
	}
	if payload.IsActive != nil {
		existing.IsActive = *payload.IsActive
	}

	updated, err := s.userRepo.UpdateUser(ctx, existing)
	if err != nil {
		return nil, err
	}

	if payload.Password != nil && *payload.Password != "" {
		hashed, err := hashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePassword(ctx, id, hashed); err != nil {
			return nil, err
		}
	}

	s.invalidateChart(ctx)
	return userEntityToDTO(updated), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.invalidateChart(ctx)
	return nil
}
