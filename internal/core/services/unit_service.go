package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
)

type unitService struct {
	unitRepo portsrepo.UnitRepositoryFacade
}

// NewUnitService creates the administrative unit service.
func NewUnitService(unitRepo portsrepo.UnitRepositoryFacade) portssvc.UnitSvcFacade {
	return &unitService{unitRepo: unitRepo}
}

var _ portssvc.UnitSvcFacade = (*unitService)(nil)

func (s *unitService) CreateUnit(ctx context.Context, req dto.CreateUnitRequest, creatorUserID string) (*domain.AdministrativeUnit, error) {
	now := time.Now()
	unit := domain.AdministrativeUnit{
		UnitID:   uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.unitRepo.SaveUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to save unit: %w", err)
	}
	return &unit, nil
}

func (s *unitService) GetUnitByID(ctx context.Context, unitID string) (*domain.AdministrativeUnit, error) {
	unit, err := s.unitRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unit %s: %w", unitID, err)
	}
	return unit, nil
}

func (s *unitService) ListUnits(ctx context.Context, activeOnly bool) ([]domain.AdministrativeUnit, error) {
	units, err := s.unitRepo.ListUnits(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

func (s *unitService) UpdateUnit(ctx context.Context, unitID string, req dto.UpdateUnitRequest, updaterUserID string) (*domain.AdministrativeUnit, error) {
	unit, err := s.unitRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unit %s: %w", unitID, err)
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Location != nil {
		unit.Location = *req.Location
	}
	if req.IsActive != nil {
		unit.IsActive = *req.IsActive
	}
	unit.LastUpdatedAt = time.Now()
	unit.LastUpdatedBy = updaterUserID

	if err := s.unitRepo.UpdateUnit(ctx, *unit); err != nil {
		return nil, fmt.Errorf("failed to update unit %s: %w", unitID, err)
	}
	return unit, nil
}
