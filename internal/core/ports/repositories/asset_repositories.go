package repositories

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// AssetListFilter narrows ListAssets results. Zero values mean "no filter".
type AssetListFilter struct {
	Status     domain.AssetStatus
	CategoryID string
	UnitID     string
}

// AssetReader defines read operations for asset data.
type AssetReader interface {
	// FindAssetByID retrieves an asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// FindAssetByCode retrieves an asset by its patrimonial code.
	FindAssetByCode(ctx context.Context, patrimonialCode string) (*domain.Asset, error)

	// ListAssets retrieves a filtered, paginated list of assets ordered by creation date descending.
	ListAssets(ctx context.Context, filter AssetListFilter, limit int, offset int) ([]domain.Asset, error)

	// ListDepreciableAssets retrieves every asset with a depreciation method,
	// a positive useful life and an accruing status. This is the snapshot a
	// depreciation run operates on.
	ListDepreciableAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data.
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates a mutable subset of an existing asset's fields.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// NextPatrimonialSequence returns the next value of the patrimonial code sequence.
	NextPatrimonialSequence(ctx context.Context) (int64, error)
}

// AssetRepositoryFacade combines all asset repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
