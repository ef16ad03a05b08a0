package services

import (
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/pkg/config"
)

// NewServiceContainer creates the service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Asset = NewAssetService(repos.AssetRepo, cfg.PatrimonialCodePrefix)
	container.Depreciation = NewDepreciationService(repos.AssetRepo, repos.DepreciationRepo)
	container.Movement = NewMovementService(repos.MovementRepo, repos.AssetRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Unit = NewUnitService(repos.UnitRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
