package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
	"github.com/patrimonia/asset_inventory_app/internal/utils/depreciation"
)

var (
	// ErrInvalidPeriod indicates a malformed or out-of-range (month, year).
	// Rejected before any computation, no side effects.
	ErrInvalidPeriod = errors.New("invalid depreciation period")

	// ErrCommitFailed indicates the run's atomic commit failed. Nothing from
	// the run persisted; re-invoking Run for the same period is safe because
	// the idempotency check skips whatever a later attempt finds committed.
	ErrCommitFailed = errors.New("failed to commit depreciation run")
)

// depreciationService orchestrates monthly depreciation runs over the ledger.
type depreciationService struct {
	assetRepo  portsrepo.AssetReader
	ledgerRepo portsrepo.DepreciationRepositoryFacade
}

// NewDepreciationService creates the depreciation engine.
func NewDepreciationService(assetRepo portsrepo.AssetReader, ledgerRepo portsrepo.DepreciationRepositoryFacade) portssvc.DepreciationSvcFacade {
	return &depreciationService{
		assetRepo:  assetRepo,
		ledgerRepo: ledgerRepo,
	}
}

var _ portssvc.DepreciationSvcFacade = (*depreciationService)(nil)

// Run implements portssvc.DepreciationSvcFacade.
//
// The run is a single logical transaction: every eligible asset is computed in
// memory first and the resulting records are committed in one atomic
// AppendRecords call. Per-asset computation errors are collected in the
// summary and never abort the run; a commit failure aborts the run with
// nothing persisted.
func (s *depreciationService) Run(ctx context.Context, month int, year int, requestedBy string) (*domain.RunSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period := domain.Period{Month: month, Year: year}
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}

	assets, err := s.assetRepo.ListDepreciableAssets(ctx)
	if err != nil {
		logger.Error("Failed to list depreciable assets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list depreciable assets: %w", err)
	}

	now := time.Now().UTC()
	summary, staged, err := s.stageRun(ctx, assets, period, requestedBy, now)
	if err != nil {
		return nil, err
	}

	if len(staged) > 0 {
		if err := s.ledgerRepo.AppendRecords(ctx, staged); err != nil {
			if !errors.Is(err, apperrors.ErrDuplicate) {
				logger.Error("Depreciation run commit failed", slog.String("period", period.String()), slog.String("error", err.Error()))
				return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
			}

			// A concurrent run for the same period won the race on at least
			// one (asset, month, year) key and our whole batch rolled back.
			// Re-stage once: the idempotency check now absorbs the winner's
			// records as skips.
			logger.Warn("Depreciation run lost a commit race, re-staging", slog.String("period", period.String()))
			summary, staged, err = s.stageRun(ctx, assets, period, requestedBy, now)
			if err != nil {
				return nil, err
			}
			if len(staged) > 0 {
				if err := s.ledgerRepo.AppendRecords(ctx, staged); err != nil {
					logger.Error("Depreciation run commit failed after re-stage", slog.String("period", period.String()), slog.String("error", err.Error()))
					return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
				}
			}
		}
	}

	logger.Info("Depreciation run completed",
		slog.String("period", period.String()),
		slog.Int("computed", summary.ComputedCount),
		slog.Int("skipped", summary.SkippedCount),
		slog.Int("errors", len(summary.Errors)),
	)
	return summary, nil
}

// stageRun computes one record per eligible asset without persisting anything.
func (s *depreciationService) stageRun(ctx context.Context, assets []domain.Asset, period domain.Period, requestedBy string, now time.Time) (*domain.RunSummary, []domain.DepreciationRecord, error) {
	summary := &domain.RunSummary{
		Period: period,
		Errors: []domain.RunError{},
	}
	staged := make([]domain.DepreciationRecord, 0, len(assets))

	for i := range assets {
		asset := &assets[i]

		// The repository already filters on eligibility; an ineligible asset
		// here is simply not considered, it is neither skipped nor an error.
		if !asset.EligibleForDepreciation() {
			continue
		}

		exists, err := s.ledgerRepo.RecordExists(ctx, asset.AssetID, period.Month, period.Year)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check existing record for asset %s: %w", asset.AssetID, err)
		}
		if exists {
			summary.SkippedCount++
			continue
		}

		priorNet, priorAccumulated, err := s.resolvePriorState(ctx, asset)
		if err != nil {
			return nil, nil, err
		}

		// Terminal state: already depreciated down to the residual floor.
		if priorNet.LessThanOrEqual(asset.ResidualValue) {
			summary.SkippedCount++
			continue
		}

		charge, err := depreciation.MonthlyCharge(*asset.Method, asset.AcquisitionValue, asset.ResidualValue, *asset.UsefulLifeYears, priorNet)
		if err != nil {
			summary.Errors = append(summary.Errors, domain.RunError{AssetID: asset.AssetID, Reason: err.Error()})
			continue
		}

		// Residual floor: the charge never drives net book value below the
		// asset's residual value.
		if priorNet.Sub(charge).LessThan(asset.ResidualValue) {
			charge = priorNet.Sub(asset.ResidualValue)
		}
		if charge.IsNegative() {
			summary.Errors = append(summary.Errors, domain.RunError{
				AssetID: asset.AssetID,
				Reason:  fmt.Sprintf("%v: clamped charge is negative (%s)", depreciation.ErrComputation, charge),
			})
			continue
		}

		newAccumulated := priorAccumulated.Add(charge)
		newNet := asset.AcquisitionValue.Sub(newAccumulated)

		// Both derivations of the new book value must agree; a mismatch means
		// the asset's stored history is inconsistent with its snapshot.
		if !newNet.Equal(priorNet.Sub(charge)) {
			summary.Errors = append(summary.Errors, domain.RunError{
				AssetID: asset.AssetID,
				Reason:  fmt.Sprintf("%v: accumulated depreciation does not reconcile with book value", depreciation.ErrComputation),
			})
			continue
		}

		staged = append(staged, domain.DepreciationRecord{
			RecordID:                uuid.NewString(),
			AssetID:                 asset.AssetID,
			Month:                   period.Month,
			Year:                    period.Year,
			PeriodCharge:            charge,
			AccumulatedDepreciation: newAccumulated,
			NetBookValue:            newNet,
			ComputedAt:              now,
			ComputedBy:              requestedBy,
		})
		summary.ComputedCount++
	}

	return summary, staged, nil
}

// resolvePriorState returns the asset's book value and accumulated
// depreciation as of its latest ledger record, defaulting to the acquisition
// value and zero when no record exists yet.
func (s *depreciationService) resolvePriorState(ctx context.Context, asset *domain.Asset) (decimal.Decimal, decimal.Decimal, error) {
	prior, err := s.ledgerRepo.FindLatestRecord(ctx, asset.AssetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return asset.AcquisitionValue, decimal.Zero, nil
		}
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to resolve latest record for asset %s: %w", asset.AssetID, err)
	}
	return prior.NetBookValue, prior.AccumulatedDepreciation, nil
}

// GetLatestRecord implements portssvc.DepreciationSvcFacade.
func (s *depreciationService) GetLatestRecord(ctx context.Context, assetID string) (*domain.DepreciationRecord, error) {
	record, err := s.ledgerRepo.FindLatestRecord(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find latest depreciation record", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find latest record for asset %s: %w", assetID, err)
	}
	return record, nil
}

// ListRecordsByAsset implements portssvc.DepreciationSvcFacade.
func (s *depreciationService) ListRecordsByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error) {
	records, err := s.ledgerRepo.ListRecordsByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for asset %s: %w", assetID, err)
	}
	return records, nil
}

// ListRecordsByPeriod implements portssvc.DepreciationSvcFacade.
func (s *depreciationService) ListRecordsByPeriod(ctx context.Context, month int, year int) ([]domain.DepreciationRecord, error) {
	period := domain.Period{Month: month, Year: year}
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}
	records, err := s.ledgerRepo.ListRecordsByPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for period %s: %w", period, err)
	}
	return records, nil
}
