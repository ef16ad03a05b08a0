package repositories

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepositoryFacade defines the aggregate queries behind the dashboard.
type ReportingRepositoryFacade interface {
	// SumAcquisitionValue totals the acquisition value of every asset.
	SumAcquisitionValue(ctx context.Context) (decimal.Decimal, error)

	// SumLatestAccumulatedDepreciation totals, across all assets, the
	// accumulated depreciation of each asset's most recent ledger record.
	SumLatestAccumulatedDepreciation(ctx context.Context) (decimal.Decimal, error)

	// CountAssetsByStatus returns the asset count for each status present.
	CountAssetsByStatus(ctx context.Context) ([]domain.StatusCount, error)

	// CountAssetsWithStatus returns the number of assets in one status.
	CountAssetsWithStatus(ctx context.Context, status domain.AssetStatus) (int, error)

	// CountActiveUnits returns the number of active administrative units.
	CountActiveUnits(ctx context.Context) (int, error)

	// InventoryByUnit returns asset count and total value per active unit,
	// ordered by asset count descending.
	InventoryByUnit(ctx context.Context) ([]domain.UnitInventory, error)
}
