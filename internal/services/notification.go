package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	"pulse/internal/repositories"
	"pulse/pkg/types"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	logger           *zap.Logger
}

func NewNotificationService(notificationRepo repositories.NotificationRepositoryInterface, logger *zap.Logger) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, logger: logger}
}

func notificationEntityToDTO(entity *entities.Notification) *dto.NotificationDTO {
	if entity == nil {
		return nil
	}
	createdAt := ""
	if entity.CreatedAt != nil {
		createdAt = entity.CreatedAt.Format(time.RFC3339)
	}
	return &dto.NotificationDTO{
		ID:        entity.ID,
		Type:      entity.Type,
		Message:   entity.Message,
		Link:      entity.Link,
		IsRead:    entity.IsRead,
		CreatedAt: createdAt,
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, recipientID string, filter types.Filter) ([]dto.NotificationDTO, uint64, error) {
	notifications, total, err := s.notificationRepo.GetByRecipient(ctx, recipientID, filter)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]dto.NotificationDTO, 0, len(notifications))
	for i := range notifications {
		dtos = append(dtos, *notificationEntityToDTO(&notifications[i]))
	}
	return dtos, total, nil
}

func (s *NotificationService) CountUnread(ctx context.Context, recipientID string) (uint64, error) {
	return s.notificationRepo.CountUnread(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, recipientID string, payload dto.MarkReadDTO) error {
	return s.notificationRepo.MarkRead(ctx, recipientID, payload.IDs)
}
