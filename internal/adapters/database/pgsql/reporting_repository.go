package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReportingRepository creates a new repository for dashboard aggregates.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{pool: pool}
}

func (r *PgxReportingRepository) SumAcquisitionValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(acquisition_value), 0) FROM assets;`
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum acquisition value: %w", err)
	}
	return total, nil
}

// SumLatestAccumulatedDepreciation totals each asset's most recent ledger
// record, so the figure matches the books rather than a naive sum of charges.
func (r *PgxReportingRepository) SumLatestAccumulatedDepreciation(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(accumulated_depreciation), 0)
		FROM (
			SELECT DISTINCT ON (asset_id) accumulated_depreciation
			FROM depreciation_records
			ORDER BY asset_id, year DESC, month DESC, computed_at DESC, record_id DESC
		) latest;
	`
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum accumulated depreciation: %w", err)
	}
	return total, nil
}

func (r *PgxReportingRepository) CountAssetsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM assets GROUP BY status ORDER BY status;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query status distribution: %w", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatusCount, error) {
		var sc domain.StatusCount
		err := row.Scan(&sc.Status, &sc.Count)
		return sc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan status distribution: %w", err)
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountAssetsWithStatus(ctx context.Context, status domain.AssetStatus) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM assets WHERE status = $1;`
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assets with status %s: %w", status, err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountActiveUnits(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM administrative_units WHERE is_active;`
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active units: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) InventoryByUnit(ctx context.Context) ([]domain.UnitInventory, error) {
	query := `
		SELECT u.name, COUNT(a.asset_id), COALESCE(SUM(a.acquisition_value), 0)
		FROM administrative_units u
		LEFT JOIN assets a ON a.unit_id = u.unit_id
		WHERE u.is_active
		GROUP BY u.name
		ORDER BY COUNT(a.asset_id) DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit inventory: %w", err)
	}
	defer rows.Close()

	inventory, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UnitInventory, error) {
		var ui domain.UnitInventory
		err := row.Scan(&ui.UnitName, &ui.AssetCount, &ui.TotalValue)
		return ui, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan unit inventory: %w", err)
	}
	return inventory, nil
}
