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

const assetTable = "assets"
const assetSelectFields = "a.id, a.tag, a.name, a.serial, a.status, a.assigned_to, a.created_at, a.updated_at, a.deleted_at"

var assetAllowedListFields = map[string]string{
	"status":      "a.status",
	"assigned_to": "a.assigned_to",
	"id":          "a.id",
	"tag":         "a.tag",
	"name":        "a.name",
	"created_at":  "a.created_at",
}

type AssetRepositoryInterface interface {
	GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error)
	FindAsset(ctx context.Context, id int64) (*entities.Asset, error)
	CreateAsset(ctx context.Context, entity entities.Asset) (*entities.Asset, error)
	UpdateAsset(ctx context.Context, entity *entities.Asset) (*entities.Asset, error)
	SetAssignment(ctx context.Context, id int64, assignedTo null.String, status string) (*entities.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
}

type AssetRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAssetRepository(storage *pgxpool.Pool, logger *zap.Logger) AssetRepositoryInterface {
	return &AssetRepository{storage: storage, logger: logger}
}

func scanAsset(row pgx.Row) (*entities.Asset, error) {
	var a entities.Asset
	err := row.Scan(&a.ID, &a.Tag, &a.Name, &a.Serial, &a.Status, &a.AssignedTo, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset: %w", err)
	}
	return &a, nil
}

func (r *AssetRepository) GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	base := sq.Select().From(assetTable + " AS a").
		Where("a.deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"a.tag": pattern},
			sq.ILike{"a.name": pattern},
			sq.ILike{"a.serial": pattern},
		})
	}
	base = infradb.ApplyListParams(base, types.Filter{Filter: filter.Filter}, assetAllowedListFields)

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Asset{}, 0, nil
	}

	listBuilder := sq.Select(strings.Split(assetSelectFields, ", ")...).
		From(assetTable + " AS a").
		Where("a.deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		listBuilder = listBuilder.Where(sq.Or{
			sq.ILike{"a.tag": pattern},
			sq.ILike{"a.name": pattern},
			sq.ILike{"a.serial": pattern},
		})
	}
	listBuilder = infradb.ApplyListParams(listBuilder, filter, assetAllowedListFields)
	if len(filter.Sort) == 0 {
		listBuilder = listBuilder.OrderBy("a.tag ASC")
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

	assets := make([]entities.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, *asset)
	}
	return assets, total, rows.Err()
}

func (r *AssetRepository) FindAsset(ctx context.Context, id int64) (*entities.Asset, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s AS a WHERE a.id = $1 AND a.deleted_at IS NULL`, assetSelectFields, assetTable)
	return scanAsset(r.storage.QueryRow(ctx, query, id))
}

func (r *AssetRepository) CreateAsset(ctx context.Context, entity entities.Asset) (*entities.Asset, error) {
	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (tag, name, serial, status) VALUES ($1, $2, $3, $4) RETURNING id
		) SELECT %s FROM %s AS a WHERE a.id = (SELECT id FROM ins)
	`, assetTable, assetSelectFields, assetTable)

	created, err := scanAsset(r.storage.QueryRow(ctx, query, entity.Tag, entity.Name, entity.Serial, entity.Status))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, "asset tag is already in use", err)
		}
		return nil, err
	}
	return created, nil
}

func (r *AssetRepository) UpdateAsset(ctx context.Context, entity *entities.Asset) (*entities.Asset, error) {
	query := fmt.Sprintf(`
		WITH upd AS (
			UPDATE %s SET name = $1, serial = $2, status = $3, updated_at = CURRENT_TIMESTAMP
			WHERE id = $4 AND deleted_at IS NULL RETURNING id
		) SELECT %s FROM %s AS a WHERE a.id = (SELECT id FROM upd)
	`, assetTable, assetSelectFields, assetTable)
	return scanAsset(r.storage.QueryRow(ctx, query, entity.Name, entity.Serial, entity.Status, entity.ID))
}

func (r *AssetRepository) SetAssignment(ctx context.Context, id int64, assignedTo null.String, status string) (*entities.Asset, error) {
	query := fmt.Sprintf(`
		WITH upd AS (
			UPDATE %s SET assigned_to = $1, status = $2, updated_at = CURRENT_TIMESTAMP
			WHERE id = $3 AND deleted_at IS NULL RETURNING id
		) SELECT %s FROM %s AS a WHERE a.id = (SELECT id FROM upd)
	`, assetTable, assetSelectFields, assetTable)
	return scanAsset(r.storage.QueryRow(ctx, query, assignedTo, status, id))
}

func (r *AssetRepository) DeleteAsset(ctx context.Context, id int64) error {
	query := `UPDATE assets SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
