package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pulse/internal/entities"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/types"
)

const notificationTable = "notifications"
const notificationSelectFields = "n.id, n.recipient_id, n.type, n.message, n.link, n.is_read, n.created_at, n.updated_at"

type NotificationRepositoryInterface interface {
	GetByRecipient(ctx context.Context, recipientID string, filter types.Filter) ([]entities.Notification, uint64, error)
	CountUnread(ctx context.Context, recipientID string) (uint64, error)
	Create(ctx context.Context, entity entities.Notification) (*entities.Notification, error)
	MarkRead(ctx context.Context, recipientID string, ids []int64) error
}

type NotificationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewNotificationRepository(storage *pgxpool.Pool, logger *zap.Logger) NotificationRepositoryInterface {
	return &NotificationRepository{storage: storage, logger: logger}
}

func scanNotification(row pgx.Row) (*entities.Notification, error) {
	var n entities.Notification
	err := row.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Message, &n.Link, &n.IsRead, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan notification: %w", err)
	}
	return &n, nil
}

func (r *NotificationRepository) GetByRecipient(ctx context.Context, recipientID string, filter types.Filter) ([]entities.Notification, uint64, error) {
	var total uint64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s AS n WHERE n.recipient_id = $1`, notificationTable)
	if err := r.storage.QueryRow(ctx, countQuery, recipientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Notification{}, 0, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s AS n WHERE n.recipient_id = $1 ORDER BY n.created_at DESC LIMIT $2 OFFSET $3`,
		notificationSelectFields, notificationTable)
	rows, err := r.storage.Query(ctx, query, recipientID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, *n)
	}
	return notifications, total, rows.Err()
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID string) (uint64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s AS n WHERE n.recipient_id = $1 AND n.is_read = FALSE`, notificationTable)
	var count uint64
	err := r.storage.QueryRow(ctx, query, recipientID).Scan(&count)
	return count, err
}

func (r *NotificationRepository) Create(ctx context.Context, entity entities.Notification) (*entities.Notification, error) {
	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (recipient_id, type, message, link) VALUES ($1, $2, $3, $4) RETURNING id
		) SELECT %s FROM %s AS n WHERE n.id = (SELECT id FROM ins)
	`, notificationTable, notificationSelectFields, notificationTable)
	return scanNotification(r.storage.QueryRow(ctx, query, entity.RecipientID, entity.Type, entity.Message, entity.Link))
}

// MarkRead flips is_read for the caller's own notifications only.
func (r *NotificationRepository) MarkRead(ctx context.Context, recipientID string, ids []int64) error {
	query := `UPDATE notifications SET is_read = TRUE, updated_at = CURRENT_TIMESTAMP WHERE recipient_id = $1 AND id = ANY($2)`
	result, err := r.storage.Exec(ctx, query, recipientID, ids)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
