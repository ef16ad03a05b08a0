package services

// ServiceContainer bundles every service facade the handler layer depends on.
type ServiceContainer struct {
	Asset        AssetSvcFacade
	Depreciation DepreciationSvcFacade
	Movement     MovementSvcFacade
	Category     CategorySvcFacade
	Supplier     SupplierSvcFacade
	Unit         UnitSvcFacade
	User         UserSvcFacade
	Reporting    ReportingSvcFacade
}
