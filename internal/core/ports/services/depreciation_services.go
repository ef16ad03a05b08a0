package services

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// DepreciationSvcFacade is the depreciation ledger engine's surface.
type DepreciationSvcFacade interface {
	// Run computes and persists one depreciation record per eligible asset
	// for the given period, atomically, and returns the run summary.
	// requestedBy is the acting user ID, or empty for scheduled runs.
	Run(ctx context.Context, month int, year int, requestedBy string) (*domain.RunSummary, error)

	// GetLatestRecord returns an asset's most recent ledger record.
	GetLatestRecord(ctx context.Context, assetID string) (*domain.DepreciationRecord, error)

	// ListRecordsByAsset returns an asset's full schedule so far, ascending.
	ListRecordsByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error)

	// ListRecordsByPeriod returns every record of one period.
	ListRecordsByPeriod(ctx context.Context, month int, year int) ([]domain.DepreciationRecord, error)
}
