package services

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
)

// AssetSvcFacade is the asset registry's surface.
type AssetSvcFacade interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.Asset, error)
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)
	GetAssetByCode(ctx context.Context, patrimonialCode string) (*domain.Asset, error)
	ListAssets(ctx context.Context, filter portsrepo.AssetListFilter, limit int, offset int) ([]domain.Asset, error)
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, updaterUserID string) (*domain.Asset, error)
}

// MovementSvcFacade records asset movements and applies their side effects.
type MovementSvcFacade interface {
	CreateMovement(ctx context.Context, req dto.CreateMovementRequest, creatorUserID string) (*domain.AssetMovement, error)
	GetMovementByID(ctx context.Context, movementID string) (*domain.AssetMovement, error)
	ListMovements(ctx context.Context, filter portsrepo.MovementListFilter, limit int, offset int) ([]domain.AssetMovement, error)
}
