package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pulse/internal/entities"
	"pulse/internal/events"
	"pulse/internal/repositories"
	"pulse/pkg/eventbus"
	"pulse/pkg/websocket"
)

// NotificationListener turns domain events into persisted
// notifications and pushes them to connected clients.
type NotificationListener struct {
	notificationRepo repositories.NotificationRepositoryInterface
	hub              *websocket.Hub
	logger           *zap.Logger
}

func NewNotificationListener(
	notificationRepo repositories.NotificationRepositoryInterface,
	hub *websocket.Hub,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		notificationRepo: notificationRepo,
		hub:              hub,
		logger:           logger,
	}
}

// Subscribe wires the listener onto the bus.
func (l *NotificationListener) Subscribe(bus *eventbus.Bus) {
	bus.Subscribe(events.TransferAppliedName, l.onTransferApplied)
	bus.Subscribe(events.TerminationAppliedName, l.onTerminationApplied)
	bus.Subscribe(events.AssetAssignedName, l.onAssetAssigned)
	bus.Subscribe(events.ManagerChangedName, l.onManagerChanged)
}

func (l *NotificationListener) notify(ctx context.Context, recipientID, notifType, message, link string) error {
	if recipientID == "" {
		return nil
	}

	created, err := l.notificationRepo.Create(ctx, entities.Notification{
		RecipientID: recipientID,
		Type:        notifType,
		Message:     message,
		Link:        link,
	})
	if err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	payload := websocket.NotificationPayload{
		EventID: fmt.Sprintf("%d", created.ID),
		Type:    notifType,
		Message: message,
		Link:    link,
	}
	if created.CreatedAt != nil {
		payload.CreatedAt = *created.CreatedAt
	}
	if err := l.hub.SendMessageToUser(recipientID, payload, "notification"); err != nil {
		// delivery is best effort; the bell icon reads from the database
		l.logger.Warn("websocket push failed", zap.String("recipient", recipientID), zap.Error(err))
	}
	return nil
}

func (l *NotificationListener) onTransferApplied(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.TransferAppliedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	msg := fmt.Sprintf("%s was transferred to %s", e.UserName, e.ToDepartment)
	if err := l.notify(ctx, e.ManagerID, "transfer", msg, "/users/"+e.UserID); err != nil {
		return err
	}
	return l.notify(ctx, e.UserID, "transfer", "You were transferred to "+e.ToDepartment, "")
}

func (l *NotificationListener) onTerminationApplied(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.TerminationAppliedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	msg := fmt.Sprintf("%s has left the company", e.UserName)
	if e.PromotedReports > 0 {
		msg = fmt.Sprintf("%s; %d direct reports now report to you", msg, e.PromotedReports)
	}
	return l.notify(ctx, e.ManagerID, "termination", msg, "")
}

func (l *NotificationListener) onAssetAssigned(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.AssetAssignedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	msg := fmt.Sprintf("Asset %s (%s) was assigned to you", e.AssetName, e.AssetTag)
	return l.notify(ctx, e.UserID, "asset", msg, fmt.Sprintf("/assets/%d", e.AssetID))
}

func (l *NotificationListener) onManagerChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.ManagerChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	msg := fmt.Sprintf("%s now reports to you", e.UserName)
	return l.notify(ctx, e.NewManagerID, "org_chart", msg, "/org-chart")
}
