package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type PgxAssetRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAssetRepository creates a new repository for asset data.
func NewPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{pool: pool}
}

const assetColumns = `asset_id, patrimonial_code, legacy_code, description, category_id, brand, model,
	serial_number, quantity, acquisition_date, acquisition_reason, purchase_order_ref, supplier_id,
	acquisition_value, value_usd, physical_location, unit_id, custodian_name, custodian_title,
	useful_life_years, residual_value, method, status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var a domain.Asset
	err := row.Scan(
		&a.AssetID,
		&a.PatrimonialCode,
		&a.LegacyCode,
		&a.Description,
		&a.CategoryID,
		&a.Brand,
		&a.Model,
		&a.SerialNumber,
		&a.Quantity,
		&a.AcquisitionDate,
		&a.AcquisitionReason,
		&a.PurchaseOrderRef,
		&a.SupplierID,
		&a.AcquisitionValue,
		&a.ValueUSD,
		&a.PhysicalLocation,
		&a.UnitID,
		&a.CustodianName,
		&a.CustodianTitle,
		&a.UsefulLifeYears,
		&a.ResidualValue,
		&a.Method,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28);
	`
	_, err := r.pool.Exec(ctx, query,
		asset.AssetID,
		asset.PatrimonialCode,
		asset.LegacyCode,
		asset.Description,
		asset.CategoryID,
		asset.Brand,
		asset.Model,
		asset.SerialNumber,
		asset.Quantity,
		asset.AcquisitionDate,
		asset.AcquisitionReason,
		asset.PurchaseOrderRef,
		asset.SupplierID,
		asset.AcquisitionValue,
		asset.ValueUSD,
		asset.PhysicalLocation,
		asset.UnitID,
		asset.CustodianName,
		asset.CustodianTitle,
		asset.UsefulLifeYears,
		asset.ResidualValue,
		asset.Method,
		asset.Status,
		asset.Notes,
		asset.CreatedAt,
		asset.CreatedBy,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert asset %s: %w", asset.AssetID, err)
	}
	return nil
}

// UpdateAsset updates the mutable fields of an existing asset.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		UPDATE assets SET
			description = $2, category_id = $3, brand = $4, model = $5, serial_number = $6,
			quantity = $7, purchase_order_ref = $8, supplier_id = $9, physical_location = $10,
			unit_id = $11, custodian_name = $12, custodian_title = $13, status = $14, notes = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE asset_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		asset.AssetID,
		asset.Description,
		asset.CategoryID,
		asset.Brand,
		asset.Model,
		asset.SerialNumber,
		asset.Quantity,
		asset.PurchaseOrderRef,
		asset.SupplierID,
		asset.PhysicalLocation,
		asset.UnitID,
		asset.CustodianName,
		asset.CustodianTitle,
		asset.Status,
		asset.Notes,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update asset %s: %w", asset.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAssetByID retrieves an asset by its unique identifier.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`
	asset, err := scanAsset(r.pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by id %s: %w", assetID, err)
	}
	return asset, nil
}

// FindAssetByCode retrieves an asset by its patrimonial code.
func (r *PgxAssetRepository) FindAssetByCode(ctx context.Context, patrimonialCode string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE patrimonial_code = $1;`
	asset, err := scanAsset(r.pool.QueryRow(ctx, query, patrimonialCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by code %s: %w", patrimonialCode, err)
	}
	return asset, nil
}

// ListAssets retrieves a filtered, paginated list of assets.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, filter portsrepo.AssetListFilter, limit int, offset int) ([]domain.Asset, error) {
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.UnitID != "" {
		args = append(args, filter.UnitID)
		conditions = append(conditions, fmt.Sprintf("unit_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`SELECT `+assetColumns+` FROM assets %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`, where, limitPos, offsetPos)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Asset, error) {
		asset, err := scanAsset(row)
		if err != nil {
			return domain.Asset{}, err
		}
		return *asset, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}
	return assets, nil
}

// ListDepreciableAssets retrieves every asset a depreciation run must consider.
func (r *PgxAssetRepository) ListDepreciableAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE method IS NOT NULL
		  AND useful_life_years > 0
		  AND status IN ('NEW', 'GOOD', 'FAIR', 'POOR', 'UNDER_REPAIR')
		ORDER BY patrimonial_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query depreciable assets: %w", err)
	}
	defer rows.Close()

	assets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Asset, error) {
		asset, err := scanAsset(row)
		if err != nil {
			return domain.Asset{}, err
		}
		return *asset, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan depreciable assets: %w", err)
	}
	return assets, nil
}

// NextPatrimonialSequence returns the next value of the patrimonial code sequence.
func (r *PgxAssetRepository) NextPatrimonialSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('patrimonial_code_seq');`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance patrimonial code sequence: %w", err)
	}
	return seq, nil
}
