package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
)

type PgxDepreciationRepository struct {
	pool *pgxpool.Pool
}

// NewPgxDepreciationRepository creates a new repository for the depreciation ledger.
func NewPgxDepreciationRepository(pool *pgxpool.Pool) portsrepo.DepreciationRepositoryFacade {
	return &PgxDepreciationRepository{pool: pool}
}

const recordColumns = `record_id, asset_id, month, year, period_charge, accumulated_depreciation,
	net_book_value, computed_at, computed_by`

func scanRecord(row pgx.Row) (*domain.DepreciationRecord, error) {
	var rec domain.DepreciationRecord
	err := row.Scan(
		&rec.RecordID,
		&rec.AssetID,
		&rec.Month,
		&rec.Year,
		&rec.PeriodCharge,
		&rec.AccumulatedDepreciation,
		&rec.NetBookValue,
		&rec.ComputedAt,
		&rec.ComputedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// AppendRecords commits a batch of ledger records in a single database
// transaction. A unique violation on (asset_id, month, year) rolls the whole
// batch back and surfaces as apperrors.ErrDuplicate.
func (r *PgxDepreciationRepository) AppendRecords(ctx context.Context, records []domain.DepreciationRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	query := `
		INSERT INTO depreciation_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query,
			rec.RecordID,
			rec.AssetID,
			rec.Month,
			rec.Year,
			rec.PeriodCharge,
			rec.AccumulatedDepreciation,
			rec.NetBookValue,
			rec.ComputedAt,
			rec.ComputedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if isUniqueViolation(err) {
				return apperrors.ErrDuplicate
			}
			return fmt.Errorf("failed to insert depreciation record: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to commit depreciation records: %w", err)
	}
	return nil
}

// FindLatestRecord returns the asset's most recent ledger record.
func (r *PgxDepreciationRepository) FindLatestRecord(ctx context.Context, assetID string) (*domain.DepreciationRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM depreciation_records
		WHERE asset_id = $1
		ORDER BY year DESC, month DESC, computed_at DESC, record_id DESC
		LIMIT 1;
	`
	record, err := scanRecord(r.pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest record for asset %s: %w", assetID, err)
	}
	return record, nil
}

// RecordExists reports whether a record exists for (asset_id, month, year).
func (r *PgxDepreciationRepository) RecordExists(ctx context.Context, assetID string, month int, year int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM depreciation_records WHERE asset_id = $1 AND month = $2 AND year = $3);`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, assetID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check record existence for asset %s: %w", assetID, err)
	}
	return exists, nil
}

// ListRecordsByAsset returns an asset's records ordered by period ascending.
func (r *PgxDepreciationRepository) ListRecordsByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM depreciation_records
		WHERE asset_id = $1
		ORDER BY year, month;
	`
	rows, err := r.pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records for asset %s: %w", assetID, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DepreciationRecord, error) {
		rec, err := scanRecord(row)
		if err != nil {
			return domain.DepreciationRecord{}, err
		}
		return *rec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan records for asset %s: %w", assetID, err)
	}
	return records, nil
}

// ListRecordsByPeriod returns every record of one period.
func (r *PgxDepreciationRepository) ListRecordsByPeriod(ctx context.Context, month int, year int) ([]domain.DepreciationRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM depreciation_records
		WHERE month = $1 AND year = $2
		ORDER BY asset_id;
	`
	rows, err := r.pool.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query records for period %d/%d: %w", month, year, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DepreciationRecord, error) {
		rec, err := scanRecord(row)
		if err != nil {
			return domain.DepreciationRecord{}, err
		}
		return *rec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan records for period %d/%d: %w", month, year, err)
	}
	return records, nil
}
