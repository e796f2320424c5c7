package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/entities"
	infradb "pulse/internal/infrastructure/db"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/types"
)

const departmentTable = "departments"
const departmentSelectFields = "d.id, d.name, d.head_id, d.is_active, d.created_at, d.updated_at, d.deleted_at"

var departmentAllowedListFields = map[string]string{
	"is_active":  "d.is_active",
	"id":         "d.id",
	"name":       "d.name",
	"created_at": "d.created_at",
}

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	GetHeadcounts(ctx context.Context) (map[int64]uint64, error)
	FindDepartment(ctx context.Context, id int64) (*entities.Department, error)
	CreateDepartment(ctx context.Context, entity entities.Department) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, id int64, payload dto.UpdateDepartmentDTO) (*entities.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Name, &d.HeadID, &d.IsActive, &d.CreatedAt, &d.UpdatedAt, &d.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	base := sq.Select().From(departmentTable + " AS d").
		Where("d.deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)
	if filter.Search != "" {
		base = base.Where(sq.ILike{"d.name": "%" + filter.Search + "%"})
	}
	base = infradb.ApplyListParams(base, types.Filter{Filter: filter.Filter}, departmentAllowedListFields)

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Department{}, 0, nil
	}

	listBuilder := sq.Select(departmentSelectFields).From(departmentTable + " AS d").
		Where("d.deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)
	if filter.Search != "" {
		listBuilder = listBuilder.Where(sq.ILike{"d.name": "%" + filter.Search + "%"})
	}
	listBuilder = infradb.ApplyListParams(listBuilder, filter, departmentAllowedListFields)
	if len(filter.Sort) == 0 {
		listBuilder = listBuilder.OrderBy("d.name ASC")
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, *d)
	}
	return departments, total, rows.Err()
}

// GetHeadcounts returns the number of active users per department.
func (r *DepartmentRepository) GetHeadcounts(ctx context.Context) (map[int64]uint64, error) {
	query := `SELECT department_id, COUNT(*) FROM users
		WHERE department_id IS NOT NULL AND is_active = TRUE AND deleted_at IS NULL
		GROUP BY department_id`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]uint64)
	for rows.Next() {
		var id int64
		var count uint64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id int64) (*entities.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s AS d WHERE d.id = $1 AND d.deleted_at IS NULL`, departmentSelectFields, departmentTable)
	return scanDepartment(r.storage.QueryRow(ctx, query, id))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, entity entities.Department) (*entities.Department, error) {
	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (name, head_id, is_active) VALUES ($1, $2, TRUE) RETURNING id
		) SELECT %s FROM %s AS d WHERE d.id = (SELECT id FROM ins)
	`, departmentTable, departmentSelectFields, departmentTable)
	return scanDepartment(r.storage.QueryRow(ctx, query, entity.Name, entity.HeadID))
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id int64, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	query := fmt.Sprintf(`
		WITH upd AS (
			UPDATE %s SET
				name = COALESCE($1, name),
				head_id = COALESCE($2, head_id),
				is_active = COALESCE($3, is_active),
				updated_at = CURRENT_TIMESTAMP
			WHERE id = $4 AND deleted_at IS NULL RETURNING id
		) SELECT %s FROM %s AS d WHERE d.id = (SELECT id FROM upd)
	`, departmentTable, departmentSelectFields, departmentTable)
	return scanDepartment(r.storage.QueryRow(ctx, query, payload.Name, payload.HeadID, payload.IsActive, id))
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id int64) error {
	query := `UPDATE departments SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
