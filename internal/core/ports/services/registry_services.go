package services

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
)

// CategorySvcFacade manages the asset category catalog.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// SupplierSvcFacade manages the supplier registry.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterUserID string) (*domain.Supplier, error)
}

// UnitSvcFacade manages administrative units.
type UnitSvcFacade interface {
	CreateUnit(ctx context.Context, req dto.CreateUnitRequest, creatorUserID string) (*domain.AdministrativeUnit, error)
	GetUnitByID(ctx context.Context, unitID string) (*domain.AdministrativeUnit, error)
	ListUnits(ctx context.Context, activeOnly bool) ([]domain.AdministrativeUnit, error)
	UpdateUnit(ctx context.Context, unitID string, req dto.UpdateUnitRequest, updaterUserID string) (*domain.AdministrativeUnit, error)
}
