package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
)

// movementService records asset movements and applies their side effects on
// the asset, atomically with the movement row itself.
type movementService struct {
	movementRepo portsrepo.MovementRepositoryFacade
	assetRepo    portsrepo.AssetReader
}

// NewMovementService creates the movement log service.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, assetRepo portsrepo.AssetReader) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo: movementRepo,
		assetRepo:    assetRepo,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// CreateMovement implements portssvc.MovementSvcFacade.
//
// Side effects by type:
//   - TRANSFER moves the asset to the target unit, custodian and location.
//   - DEACCESSION sets the asset's status to DEACCESSIONED.
//   - INCORPORATION reactivates a deaccessioned asset.
//   - STATUS_UPDATE applies the requested status.
func (s *movementService) CreateMovement(ctx context.Context, req dto.CreateMovementRequest, creatorUserID string) (*domain.AssetMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidMovementType(req.Type) {
		return nil, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, req.Type)
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s: %w", req.AssetID, err)
	}

	now := time.Now()
	movedAt := now
	if req.MovedAt != nil {
		movedAt = *req.MovedAt
	}

	movement := domain.AssetMovement{
		MovementID:   uuid.NewString(),
		AssetID:      asset.AssetID,
		Type:         req.Type,
		MovedAt:      movedAt,
		Reason:       req.Reason,
		ReferenceDoc: req.ReferenceDoc,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	switch req.Type {
	case domain.MovementTransfer:
		if asset.Status == domain.StatusDeaccessioned {
			return nil, fmt.Errorf("%w: cannot transfer a deaccessioned asset", apperrors.ErrConflict)
		}
		if req.ToUnitID == nil && req.NewCustodian == "" && req.NewLocation == "" {
			return nil, fmt.Errorf("%w: a transfer must change the unit, custodian or location", apperrors.ErrValidation)
		}
		movement.FromUnitID = asset.UnitID
		movement.PreviousCustodian = asset.CustodianName
		movement.PreviousLocation = asset.PhysicalLocation
		if req.ToUnitID != nil {
			movement.ToUnitID = req.ToUnitID
			asset.UnitID = req.ToUnitID
		}
		if req.NewCustodian != "" {
			movement.NewCustodian = req.NewCustodian
			asset.CustodianName = req.NewCustodian
		}
		if req.NewLocation != "" {
			movement.NewLocation = req.NewLocation
			asset.PhysicalLocation = req.NewLocation
		}

	case domain.MovementDeaccession:
		if asset.Status == domain.StatusDeaccessioned {
			return nil, fmt.Errorf("%w: asset is already deaccessioned", apperrors.ErrConflict)
		}
		if req.Reason == "" {
			return nil, fmt.Errorf("%w: a deaccession requires a reason", apperrors.ErrValidation)
		}
		deaccessioned := domain.StatusDeaccessioned
		movement.NewStatus = &deaccessioned
		asset.Status = domain.StatusDeaccessioned

	case domain.MovementIncorporation:
		if asset.Status != domain.StatusDeaccessioned {
			return nil, fmt.Errorf("%w: only a deaccessioned asset can be reincorporated", apperrors.ErrConflict)
		}
		restored := domain.StatusGood
		if req.NewStatus != nil {
			restored = *req.NewStatus
		}
		movement.NewStatus = &restored
		asset.Status = restored

	case domain.MovementStatusUpdate:
		if req.NewStatus == nil {
			return nil, fmt.Errorf("%w: a status update requires newStatus", apperrors.ErrValidation)
		}
		if asset.Status == domain.StatusDeaccessioned {
			return nil, fmt.Errorf("%w: deaccessioned assets change status only via incorporation", apperrors.ErrConflict)
		}
		movement.NewStatus = req.NewStatus
		asset.Status = *req.NewStatus
	}

	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = creatorUserID

	if err := s.movementRepo.SaveMovementWithAssetUpdate(ctx, movement, *asset); err != nil {
		logger.Error("Failed to save movement", slog.String("asset_id", asset.AssetID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save movement: %w", err)
	}

	logger.Info("Movement recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("asset_id", asset.AssetID),
		slog.String("type", string(movement.Type)),
	)
	return &movement, nil
}

// GetMovementByID implements portssvc.MovementSvcFacade.
func (s *movementService) GetMovementByID(ctx context.Context, movementID string) (*domain.AssetMovement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	return movement, nil
}

// ListMovements implements portssvc.MovementSvcFacade.
func (s *movementService) ListMovements(ctx context.Context, filter portsrepo.MovementListFilter, limit int, offset int) ([]domain.AssetMovement, error) {
	if filter.Type != "" && !domain.ValidMovementType(filter.Type) {
		return nil, fmt.Errorf("%w: unknown movement type filter %q", apperrors.ErrValidation, filter.Type)
	}
	movements, err := s.movementRepo.ListMovements(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}
