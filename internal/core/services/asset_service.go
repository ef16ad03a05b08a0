package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
)

// assetService implements the asset registry on top of the asset repository.
type assetService struct {
	assetRepo  portsrepo.AssetRepositoryFacade
	codePrefix string
}

// NewAssetService creates the asset registry service. codePrefix is the
// institutional prefix of generated patrimonial codes, e.g. "BM".
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade, codePrefix string) portssvc.AssetSvcFacade {
	if codePrefix == "" {
		codePrefix = "BM"
	}
	return &assetService{
		assetRepo:  assetRepo,
		codePrefix: codePrefix,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// CreateAsset implements portssvc.AssetSvcFacade.
func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateDepreciationSetup(req.AcquisitionValue, req.ResidualValue, req.UsefulLifeYears, req.Method); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusNew
	}
	if !domain.ValidStatus(status) || status == domain.StatusDeaccessioned {
		return nil, fmt.Errorf("%w: invalid initial status %q", apperrors.ErrValidation, status)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	now := time.Now()
	acquisitionDate := now
	if req.AcquisitionDate != nil {
		acquisitionDate = *req.AcquisitionDate
	}

	residual := decimal.Zero
	if req.ResidualValue != nil {
		residual = *req.ResidualValue
	}

	code, err := s.nextPatrimonialCode(ctx, now.Year())
	if err != nil {
		logger.Error("Failed to generate patrimonial code", slog.String("error", err.Error()))
		return nil, err
	}

	asset := domain.Asset{
		AssetID:           uuid.NewString(),
		PatrimonialCode:   code,
		LegacyCode:        req.LegacyCode,
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		Brand:             req.Brand,
		Model:             req.Model,
		SerialNumber:      req.SerialNumber,
		Quantity:          quantity,
		AcquisitionDate:   acquisitionDate,
		AcquisitionReason: req.AcquisitionReason,
		PurchaseOrderRef:  req.PurchaseOrderRef,
		SupplierID:        req.SupplierID,
		AcquisitionValue:  req.AcquisitionValue,
		ValueUSD:          req.ValueUSD,
		PhysicalLocation:  req.PhysicalLocation,
		UnitID:            req.UnitID,
		CustodianName:     req.CustodianName,
		CustodianTitle:    req.CustodianTitle,
		UsefulLifeYears:   req.UsefulLifeYears,
		ResidualValue:     residual,
		Method:            req.Method,
		Status:            status,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		logger.Error("Failed to save asset", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}

	logger.Info("Asset registered", slog.String("asset_id", asset.AssetID), slog.String("patrimonial_code", asset.PatrimonialCode))
	return &asset, nil
}

// nextPatrimonialCode produces the next institutional code, e.g. BM-2026-00042.
func (s *assetService) nextPatrimonialCode(ctx context.Context, year int) (string, error) {
	seq, err := s.assetRepo.NextPatrimonialSequence(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to advance patrimonial sequence: %w", err)
	}
	return fmt.Sprintf("%s-%d-%05d", s.codePrefix, year, seq), nil
}

// GetAssetByID implements portssvc.AssetSvcFacade.
func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	return asset, nil
}

// GetAssetByCode implements portssvc.AssetSvcFacade.
func (s *assetService) GetAssetByCode(ctx context.Context, patrimonialCode string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByCode(ctx, patrimonialCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset with code %s: %w", patrimonialCode, err)
	}
	return asset, nil
}

// ListAssets implements portssvc.AssetSvcFacade.
func (s *assetService) ListAssets(ctx context.Context, filter portsrepo.AssetListFilter, limit int, offset int) ([]domain.Asset, error) {
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status filter %q", apperrors.ErrValidation, filter.Status)
	}
	assets, err := s.assetRepo.ListAssets(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// UpdateAsset implements portssvc.AssetSvcFacade. Depreciation parameters and
// the acquisition value are immutable after registration; deaccessioning goes
// through the movement log, never through a direct update.
func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, updaterUserID string) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}

	if asset.Status == domain.StatusDeaccessioned {
		return nil, fmt.Errorf("%w: deaccessioned assets are read-only", apperrors.ErrConflict)
	}

	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.CategoryID != nil {
		asset.CategoryID = req.CategoryID
	}
	if req.Brand != nil {
		asset.Brand = *req.Brand
	}
	if req.Model != nil {
		asset.Model = *req.Model
	}
	if req.SerialNumber != nil {
		asset.SerialNumber = req.SerialNumber
	}
	if req.Quantity != nil {
		asset.Quantity = *req.Quantity
	}
	if req.PurchaseOrderRef != nil {
		asset.PurchaseOrderRef = *req.PurchaseOrderRef
	}
	if req.SupplierID != nil {
		asset.SupplierID = req.SupplierID
	}
	if req.PhysicalLocation != nil {
		asset.PhysicalLocation = *req.PhysicalLocation
	}
	if req.CustodianName != nil {
		asset.CustodianName = *req.CustodianName
	}
	if req.CustodianTitle != nil {
		asset.CustodianTitle = *req.CustodianTitle
	}
	if req.Status != nil {
		if !domain.ValidStatus(*req.Status) || *req.Status == domain.StatusDeaccessioned {
			return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, *req.Status)
		}
		asset.Status = *req.Status
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
	}

	asset.LastUpdatedAt = time.Now()
	asset.LastUpdatedBy = updaterUserID

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		logger.Error("Failed to update asset", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update asset %s: %w", assetID, err)
	}

	return asset, nil
}

// validateDepreciationSetup checks the cross-field rules of an asset's
// financial parameters at registration time.
func validateDepreciationSetup(acquisition decimal.Decimal, residual *decimal.Decimal, lifeYears *int, method *domain.DepreciationMethod) error {
	if acquisition.IsNegative() || acquisition.IsZero() {
		return fmt.Errorf("%w: acquisition value must be positive", apperrors.ErrValidation)
	}
	if residual != nil {
		if residual.IsNegative() {
			return fmt.Errorf("%w: residual value must not be negative", apperrors.ErrValidation)
		}
		if residual.GreaterThan(acquisition) {
			return fmt.Errorf("%w: residual value must not exceed the acquisition value", apperrors.ErrValidation)
		}
	}
	if method != nil && (lifeYears == nil || *lifeYears <= 0) {
		return fmt.Errorf("%w: a depreciation method requires a positive useful life", apperrors.ErrValidation)
	}
	return nil
}
