package repositories

// RepositoryProvider bundles every repository the service layer depends on.
type RepositoryProvider struct {
	AssetRepo        AssetRepositoryFacade
	DepreciationRepo DepreciationRepositoryFacade
	MovementRepo     MovementRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	SupplierRepo     SupplierRepositoryFacade
	UnitRepo         UnitRepositoryFacade
	UserRepo         UserRepositoryFacade
	ReportingRepo    ReportingRepositoryFacade
}
