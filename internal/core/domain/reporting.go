package domain

import "github.com/shopspring/decimal"

// StatusCount is the number of assets in a given status.
type StatusCount struct {
	Status AssetStatus `json:"status"`
	Count  int         `json:"count"`
}

// UnitInventory summarizes the holdings of one administrative unit.
type UnitInventory struct {
	UnitName   string          `json:"unitName"`
	AssetCount int             `json:"assetCount"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// DashboardStats aggregates the figures shown on the main dashboard.
// AccumulatedDepreciation sums each asset's latest ledger record, so it is the
// book-accurate institution-wide accumulated depreciation.
type DashboardStats struct {
	TotalAcquisitionValue   decimal.Decimal `json:"totalAcquisitionValue"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	ObsoleteAssetCount      int             `json:"obsoleteAssetCount"`
	ActiveUnitCount         int             `json:"activeUnitCount"`
	StatusDistribution      []StatusCount   `json:"statusDistribution"`
	InventoryByUnit         []UnitInventory `json:"inventoryByUnit"`
}
