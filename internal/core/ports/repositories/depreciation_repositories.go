package repositories

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// LedgerReader defines read operations over the depreciation ledger.
type LedgerReader interface {
	// FindLatestRecord returns the record with the greatest (year, month) for
	// the asset, breaking ties by insertion order, or apperrors.ErrNotFound
	// when the asset has no records yet.
	FindLatestRecord(ctx context.Context, assetID string) (*domain.DepreciationRecord, error)

	// RecordExists reports whether a record already exists for the composite
	// key (asset, month, year). Used for run idempotency.
	RecordExists(ctx context.Context, assetID string, month int, year int) (bool, error)

	// ListRecordsByAsset returns the asset's full record sequence ordered by
	// (year, month) ascending.
	ListRecordsByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error)

	// ListRecordsByPeriod returns every record created for the given period.
	ListRecordsByPeriod(ctx context.Context, month int, year int) ([]domain.DepreciationRecord, error)
}

// LedgerWriter defines the single write operation the ledger supports.
// Records are immutable once written; there is no update or delete.
type LedgerWriter interface {
	// AppendRecords commits a batch of new records atomically: either every
	// record persists or none do. A uniqueness violation on
	// (asset, month, year) surfaces as apperrors.ErrDuplicate with nothing
	// persisted.
	AppendRecords(ctx context.Context, records []domain.DepreciationRecord) error
}

// DepreciationRepositoryFacade combines the ledger interfaces.
type DepreciationRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
