package repositories

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence for asset categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// SupplierRepositoryFacade defines persistence for suppliers.
type SupplierRepositoryFacade interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
}

// UnitRepositoryFacade defines persistence for administrative units.
type UnitRepositoryFacade interface {
	SaveUnit(ctx context.Context, unit domain.AdministrativeUnit) error
	FindUnitByID(ctx context.Context, unitID string) (*domain.AdministrativeUnit, error)
	ListUnits(ctx context.Context, activeOnly bool) ([]domain.AdministrativeUnit, error)
	UpdateUnit(ctx context.Context, unit domain.AdministrativeUnit) error
}
