package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pulse/internal/entities"
	infradb "pulse/internal/infrastructure/db"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/types"
)

const userTable = "users"
const userSelectFields = "u.id, u.first_name, u.last_name, u.email, u.password, u.role, u.title, u.department_id, u.reports_to, u.is_active, u.must_change_password, d.name AS department_name, u.created_at, u.updated_at, u.deleted_at"
const userJoinClause = "users u LEFT JOIN departments d ON u.department_id = d.id"

var userAllowedListFields = map[string]string{
	"role":          "u.role",
	"department_id": "u.department_id",
	"is_active":     "u.is_active",
	"reports_to":    "u.reports_to",
	"id":            "u.id",
	"email":         "u.email",
	"created_at":    "u.created_at",
	"first_name":    "u.first_name",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	GetActiveUsers(ctx context.Context) ([]entities.User, error)
	FindUser(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, entity *entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, entity *entities.User) (*entities.User, error)
	UpdateReportsTo(ctx context.Context, id string, reportsTo null.String) error
	PromoteReports(ctx context.Context, managerID string, newManager null.String) (int64, error)
	UpdateDepartment(ctx context.Context, id string, departmentID int64) error
	Deactivate(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id string, newPasswordHash string) error
	DeleteUser(ctx context.Context, id string) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password,
		&user.Role, &user.Title, &user.DepartmentID, &user.ReportsTo,
		&user.IsActive, &user.MustChangePassword, &user.DepartmentName,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	base := sq.Select().From(userJoinClause).
		Where("u.deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"u.first_name": pattern},
			sq.ILike{"u.last_name": pattern},
			sq.ILike{"u.email": pattern},
		})
	}
	base = infradb.ApplyListParams(base, types.Filter{Filter: filter.Filter}, userAllowedListFields)

	countQuery, countArgs, err := base.Columns("COUNT(u.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	r.logger.Debug("counting users", zap.String("query", countQuery), zap.Any("args", countArgs))

	var totalCount uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	if totalCount == 0 {
		return []entities.User{}, 0, nil
	}

	listBuilder := sq.Select(strings.Split(userSelectFields, ", ")...).
		From(userJoinClause).
		Where("u.deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		listBuilder = listBuilder.Where(sq.Or{
			sq.ILike{"u.first_name": pattern},
			sq.ILike{"u.last_name": pattern},
			sq.ILike{"u.email": pattern},
		})
	}
	listBuilder = infradb.ApplyListParams(listBuilder, filter, userAllowedListFields)
	if len(filter.Sort) == 0 {
		listBuilder = listBuilder.OrderBy("u.created_at DESC")
	}

	mainQuery, mainArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}
	r.logger.Debug("listing users", zap.String("query", mainQuery), zap.Any("args", mainArgs))

	rows, err := r.storage.Query(ctx, mainQuery, mainArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, totalCount, rows.Err()
}

// GetActiveUsers returns the whole active roster. This is the input to
// the hierarchy builder and the org chart, so no pagination.
func (r *UserRepository) GetActiveUsers(ctx context.Context) ([]entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE u.is_active = TRUE AND u.deleted_at IS NULL ORDER BY u.id`, userSelectFields, userJoinClause)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load active users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE u.id = $1 AND u.deleted_at IS NULL`, userSelectFields, userJoinClause)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(u.email) = LOWER($1) AND u.deleted_at IS NULL LIMIT 1`, userSelectFields, userJoinClause)
	return scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) CreateUser(ctx context.Context, entity *entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`
        WITH ins AS (
            INSERT INTO %s (id, first_name, last_name, email, password, role, title, department_id, reports_to, is_active, must_change_password)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id
        ) SELECT %s FROM %s WHERE u.id = (SELECT id FROM ins)
    `, userTable, userSelectFields, userJoinClause)

	row := r.storage.QueryRow(ctx, query,
		entity.ID, entity.FirstName, entity.LastName, entity.Email, entity.Password,
		entity.Role, entity.Title, entity.DepartmentID, entity.ReportsTo,
		entity.IsActive, entity.MustChangePassword,
	)

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "users_email_key") {
				return nil, apperrors.NewHttpError(http.StatusBadRequest, "email is already in use", err)
			}
			if pgErr.Code == "23503" {
				return nil, apperrors.NewHttpError(http.StatusBadRequest, "invalid department or manager reference", err)
			}
		}
		return nil, err
	}
	return created, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, entity *entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`
		WITH upd AS (
			UPDATE %s SET first_name = $1, last_name = $2, email = $3, role = $4, title = $5,
			department_id = $6, reports_to = $7, is_active = $8, updated_at = CURRENT_TIMESTAMP
			WHERE id = $9 AND deleted_at IS NULL RETURNING id
		) SELECT %s FROM %s WHERE u.id = (SELECT id FROM upd)
	`, userTable, userSelectFields, userJoinClause)

	row := r.storage.QueryRow(ctx, query,
		entity.FirstName, entity.LastName, entity.Email, entity.Role, entity.Title,
		entity.DepartmentID, entity.ReportsTo, entity.IsActive, entity.ID,
	)
	return scanUser(row)
}

func (r *UserRepository) UpdateReportsTo(ctx context.Context, id string, reportsTo null.String) error {
	query := `UPDATE users SET reports_to = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, reportsTo, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// PromoteReports moves every direct report of managerID under
// newManager. Used when a manager is terminated so their subtree is
// not orphaned.
func (r *UserRepository) PromoteReports(ctx context.Context, managerID string, newManager null.String) (int64, error) {
	query := `UPDATE users SET reports_to = $1, updated_at = CURRENT_TIMESTAMP WHERE reports_to = $2 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, newManager, managerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *UserRepository) UpdateDepartment(ctx context.Context, id string, departmentID int64) error {
	query := `UPDATE users SET department_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, departmentID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE users SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, newPasswordHash string) error {
	query := `UPDATE users SET password = $1, must_change_password = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, newPasswordHash, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	query := `UPDATE users SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
