package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates the dashboard reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DashboardStats implements portssvc.ReportingSvcFacade.
func (s *reportingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	totalValue, err := s.reportingRepo.SumAcquisitionValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum acquisition value: %w", err)
	}

	accumulated, err := s.reportingRepo.SumLatestAccumulatedDepreciation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum accumulated depreciation: %w", err)
	}

	obsoleteCount, err := s.reportingRepo.CountAssetsWithStatus(ctx, domain.StatusObsolete)
	if err != nil {
		return nil, fmt.Errorf("failed to count obsolete assets: %w", err)
	}

	unitCount, err := s.reportingRepo.CountActiveUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active units: %w", err)
	}

	distribution, err := s.reportingRepo.CountAssetsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build status distribution: %w", err)
	}

	inventory, err := s.reportingRepo.InventoryByUnit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build unit inventory: %w", err)
	}

	logger.Debug("Dashboard stats assembled", slog.Int("statuses", len(distribution)), slog.Int("units", len(inventory)))
	return &domain.DashboardStats{
		TotalAcquisitionValue:   totalValue,
		AccumulatedDepreciation: accumulated,
		ObsoleteAssetCount:      obsoleteCount,
		ActiveUnitCount:         unitCount,
		StatusDistribution:      distribution,
		InventoryByUnit:         inventory,
	}, nil
}
