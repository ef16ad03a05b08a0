package repositories

import (
	"context"
	"time"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// MovementListFilter narrows ListMovements results. Zero values mean "no filter".
type MovementListFilter struct {
	AssetID string
	Type    domain.MovementType
	From    *time.Time
	To      *time.Time
}

// MovementRepositoryFacade defines persistence for asset movements.
type MovementRepositoryFacade interface {
	// SaveMovementWithAssetUpdate persists the movement and the updated asset
	// in a single database transaction, so a movement's side effects on the
	// asset are never applied partially.
	SaveMovementWithAssetUpdate(ctx context.Context, movement domain.AssetMovement, updatedAsset domain.Asset) error

	// FindMovementByID retrieves a movement by its unique identifier.
	FindMovementByID(ctx context.Context, movementID string) (*domain.AssetMovement, error)

	// ListMovements retrieves a filtered, paginated list of movements ordered
	// by movement date descending.
	ListMovements(ctx context.Context, filter MovementListFilter, limit int, offset int) ([]domain.AssetMovement, error)
}
