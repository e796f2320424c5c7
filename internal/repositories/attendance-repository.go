package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pulse/internal/entities"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/types"
)

const attendanceTable = "attendance"
const attendanceSelectFields = "a.id, a.user_id, a.clock_in, a.clock_out, a.note, a.created_at, a.updated_at"

type AttendanceRepositoryInterface interface {
	GetByUser(ctx context.Context, userID string, filter types.Filter) ([]entities.Attendance, uint64, error)
	FindOpenEntry(ctx context.Context, userID string) (*entities.Attendance, error)
	ClockIn(ctx context.Context, userID string, note null.String) (*entities.Attendance, error)
	ClockOut(ctx context.Context, entryID int64) (*entities.Attendance, error)
}

type AttendanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAttendanceRepository(storage *pgxpool.Pool, logger *zap.Logger) AttendanceRepositoryInterface {
	return &AttendanceRepository{storage: storage, logger: logger}
}

func scanAttendance(row pgx.Row) (*entities.Attendance, error) {
	var a entities.Attendance
	err := row.Scan(&a.ID, &a.UserID, &a.ClockIn, &a.ClockOut, &a.Note, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
	}
	return &a, nil
}

func (r *AttendanceRepository) GetByUser(ctx context.Context, userID string, filter types.Filter) ([]entities.Attendance, uint64, error) {
	var total uint64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s AS a WHERE a.user_id = $1`, attendanceTable)
	if err := r.storage.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Attendance{}, 0, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s AS a WHERE a.user_id = $1 ORDER BY a.clock_in DESC LIMIT $2 OFFSET $3`, attendanceSelectFields, attendanceTable)
	rows, err := r.storage.Query(ctx, query, userID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]entities.Attendance, 0)
	for rows.Next() {
		entry, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, *entry)
	}
	return entries, total, rows.Err()
}

// FindOpenEntry returns the entry the user has not clocked out of yet.
func (r *AttendanceRepository) FindOpenEntry(ctx context.Context, userID string) (*entities.Attendance, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s AS a WHERE a.user_id = $1 AND a.clock_out IS NULL ORDER BY a.clock_in DESC LIMIT 1`, attendanceSelectFields, attendanceTable)
	return scanAttendance(r.storage.QueryRow(ctx, query, userID))
}

func (r *AttendanceRepository) ClockIn(ctx context.Context, userID string, note null.String) (*entities.Attendance, error) {
	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (user_id, clock_in, note) VALUES ($1, CURRENT_TIMESTAMP, $2) RETURNING id
		) SELECT %s FROM %s AS a WHERE a.id = (SELECT id FROM ins)
	`, attendanceTable, attendanceSelectFields, attendanceTable)
	return scanAttendance(r.storage.QueryRow(ctx, query, userID, note))
}

func (r *AttendanceRepository) ClockOut(ctx context.Context, entryID int64) (*entities.Attendance, error) {
	query := fmt.Sprintf(`
		WITH upd AS (
			UPDATE %s SET clock_out = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
			WHERE id = $1 AND clock_out IS NULL RETURNING id
		) SELECT %s FROM %s AS a WHERE a.id = (SELECT id FROM upd)
	`, attendanceTable, attendanceSelectFields, attendanceTable)
	return scanAttendance(r.storage.QueryRow(ctx, query, entryID))
}
