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

const terminationTable = "terminations"
const terminationSelectFields = "t.id, t.user_id, t.reason, t.note, t.effective_date, t.created_at, t.updated_at"

type TerminationRepositoryInterface interface {
	GetTerminations(ctx context.Context, filter types.Filter) ([]entities.Termination, uint64, error)
	FindTermination(ctx context.Context, id int64) (*entities.Termination, error)
	CreateTermination(ctx context.Context, entity entities.Termination) (*entities.Termination, error)
}

type TerminationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTerminationRepository(storage *pgxpool.Pool, logger *zap.Logger) TerminationRepositoryInterface {
	return &TerminationRepository{storage: storage, logger: logger}
}

func scanTermination(row pgx.Row) (*entities.Termination, error) {
	var t entities.Termination
	err := row.Scan(&t.ID, &t.UserID, &t.Reason, &t.Note, &t.EffectiveDate, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan termination: %w", err)
	}
	return &t, nil
}

func (r *TerminationRepository) GetTerminations(ctx context.Context, filter types.Filter) ([]entities.Termination, uint64, error) {
	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s AS t", terminationTable)
	if err := r.storage.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Termination{}, 0, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s AS t ORDER BY t.effective_date DESC LIMIT $1 OFFSET $2",
		terminationSelectFields, terminationTable)
	rows, err := r.storage.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	terminations := make([]entities.Termination, 0)
	for rows.Next() {
		t, err := scanTermination(rows)
		if err != nil {
			return nil, 0, err
		}
		terminations = append(terminations, *t)
	}
	return terminations, total, rows.Err()
}

func (r *TerminationRepository) FindTermination(ctx context.Context, id int64) (*entities.Termination, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s AS t WHERE t.id = $1`, terminationSelectFields, terminationTable)
	return scanTermination(r.storage.QueryRow(ctx, query, id))
}

func (r *TerminationRepository) CreateTermination(ctx context.Context, entity entities.Termination) (*entities.Termination, error) {
	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (user_id, reason, note, effective_date)
			VALUES ($1, $2, $3, $4) RETURNING id
		) SELECT %s FROM %s AS t WHERE t.id = (SELECT id FROM ins)
	`, terminationTable, terminationSelectFields, terminationTable)
	return scanTermination(r.storage.QueryRow(ctx, query,
		entity.UserID, entity.Reason, entity.Note, entity.EffectiveDate))
}
