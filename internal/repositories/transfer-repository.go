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

const transferTable = "transfers"
const transferSelectFields = "t.id, t.user_id, t.from_department_id, t.to_department_id, t.effective_date, t.note, t.created_at, t.updated_at"

type TransferRepositoryInterface interface {
	GetTransfers(ctx context.Context, filter types.Filter) ([]entities.Transfer, uint64, error)
	FindTransfer(ctx context.Context, id int64) (*entities.Transfer, error)
	CreateTransfer(ctx context.Context, entity entities.Transfer) (*entities.Transfer, error)
}

type TransferRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTransferRepository(storage *pgxpool.Pool, logger *zap.Logger) TransferRepositoryInterface {
	return &TransferRepository{storage: storage, logger: logger}
}

func scanTransfer(row pgx.Row) (*entities.Transfer, error) {
	var t entities.Transfer
	err := row.Scan(&t.ID, &t.UserID, &t.FromDepartmentID, &t.ToDepartmentID, &t.EffectiveDate, &t.Note, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transfer: %w", err)
	}
	return &t, nil
}

func (r *TransferRepository) GetTransfers(ctx context.Context, filter types.Filter) ([]entities.Transfer, uint64, error) {
	conditions := "WHERE 1=1"
	args := []interface{}{}
	if userID, ok := filter.Filter["user_id"]; ok {
		args = append(args, userID)
		conditions += fmt.Sprintf(" AND t.user_id = $%d", len(args))
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s AS t %s", transferTable, conditions)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Transfer{}, 0, nil
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf("SELECT %s FROM %s AS t %s ORDER BY t.effective_date DESC LIMIT $%d OFFSET $%d",
		transferSelectFields, transferTable, conditions, len(args)-1, len(args))
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transfers := make([]entities.Transfer, 0)
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, 0, err
		}
		transfers = append(transfers, *t)
	}
	return transfers, total, rows.Err()
}

func (r *TransferRepository) FindTransfer(ctx context.Context, id int64) (*entities.Transfer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s AS t WHERE t.id = $1`, transferSelectFields, transferTable)
	return scanTransfer(r.storage.QueryRow(ctx, query, id))
}

func (r *TransferRepository) CreateTransfer(ctx context.Context, entity entities.Transfer) (*entities.Transfer, error) {
	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (user_id, from_department_id, to_department_id, effective_date, note)
			VALUES ($1, $2, $3, $4, $5) RETURNING id
		) SELECT %s FROM %s AS t WHERE t.id = (SELECT id FROM ins)
	`, transferTable, transferSelectFields, transferTable)
	return scanTransfer(r.storage.QueryRow(ctx, query,
		entity.UserID, entity.FromDepartmentID, entity.ToDepartmentID, entity.EffectiveDate, entity.Note))
}
