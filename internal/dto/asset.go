package dto

import (
	"time"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to register a new asset.
type CreateAssetRequest struct {
	Description       string                     `json:"description" binding:"required"`
	LegacyCode        string                     `json:"legacyCode"`
	CategoryID        *string                    `json:"categoryID"`
	Brand             string                     `json:"brand"`
	Model             string                     `json:"model"`
	SerialNumber      *string                    `json:"serialNumber"`
	Quantity          int                        `json:"quantity" binding:"omitempty,min=1"`
	AcquisitionDate   *time.Time                 `json:"acquisitionDate"`
	AcquisitionReason domain.AcquisitionReason   `json:"acquisitionReason"`
	PurchaseOrderRef  string                     `json:"purchaseOrderRef"`
	SupplierID        *string                    `json:"supplierID"`
	AcquisitionValue  decimal.Decimal            `json:"acquisitionValue" binding:"required,positivedecimal"`
	ValueUSD          *decimal.Decimal           `json:"valueUSD" binding:"omitempty,nonnegativedecimal"`
	PhysicalLocation  string                     `json:"physicalLocation" binding:"required"`
	UnitID            *string                    `json:"unitID"`
	CustodianName     string                     `json:"custodianName"`
	CustodianTitle    string                     `json:"custodianTitle"`
	UsefulLifeYears   *int                       `json:"usefulLifeYears" binding:"omitempty,min=1"`
	ResidualValue     *decimal.Decimal           `json:"residualValue" binding:"omitempty,nonnegativedecimal"`
	Method            *domain.DepreciationMethod `json:"method" binding:"omitempty,oneof=STRAIGHT_LINE DECLINING_BALANCE"`
	Status            domain.AssetStatus         `json:"status" binding:"omitempty,oneof=NEW GOOD FAIR POOR UNDER_REPAIR OBSOLETE"`
	Notes             string                     `json:"notes"`
}

// UpdateAssetRequest defines the fields an asset update may change.
// Acquisition value, residual value and depreciation parameters of an already
// depreciating asset are immutable; the service rejects changes to them once
// ledger records exist.
type UpdateAssetRequest struct {
	Description      *string             `json:"description"`
	CategoryID       *string             `json:"categoryID"`
	Brand            *string             `json:"brand"`
	Model            *string             `json:"model"`
	SerialNumber     *string             `json:"serialNumber"`
	Quantity         *int                `json:"quantity" binding:"omitempty,min=1"`
	PurchaseOrderRef *string             `json:"purchaseOrderRef"`
	SupplierID       *string             `json:"supplierID"`
	PhysicalLocation *string             `json:"physicalLocation"`
	CustodianName    *string             `json:"custodianName"`
	CustodianTitle   *string             `json:"custodianTitle"`
	Status           *domain.AssetStatus `json:"status" binding:"omitempty,oneof=NEW GOOD FAIR POOR UNDER_REPAIR OBSOLETE"`
	Notes            *string             `json:"notes"`
}

// AssetResponse mirrors domain.Asset for API output.
type AssetResponse struct {
	AssetID           string                     `json:"assetID"`
	PatrimonialCode   string                     `json:"patrimonialCode"`
	LegacyCode        string                     `json:"legacyCode,omitempty"`
	Description       string                     `json:"description"`
	CategoryID        *string                    `json:"categoryID,omitempty"`
	Brand             string                     `json:"brand,omitempty"`
	Model             string                     `json:"model,omitempty"`
	SerialNumber      *string                    `json:"serialNumber,omitempty"`
	Quantity          int                        `json:"quantity"`
	AcquisitionDate   time.Time                  `json:"acquisitionDate"`
	AcquisitionReason domain.AcquisitionReason   `json:"acquisitionReason"`
	PurchaseOrderRef  string                     `json:"purchaseOrderRef,omitempty"`
	SupplierID        *string                    `json:"supplierID,omitempty"`
	AcquisitionValue  decimal.Decimal            `json:"acquisitionValue"`
	ValueUSD          *decimal.Decimal           `json:"valueUSD,omitempty"`
	PhysicalLocation  string                     `json:"physicalLocation"`
	UnitID            *string                    `json:"unitID,omitempty"`
	CustodianName     string                     `json:"custodianName,omitempty"`
	CustodianTitle    string                     `json:"custodianTitle,omitempty"`
	UsefulLifeYears   *int                       `json:"usefulLifeYears,omitempty"`
	ResidualValue     decimal.Decimal            `json:"residualValue"`
	Method            *domain.DepreciationMethod `json:"method,omitempty"`
	Status            domain.AssetStatus         `json:"status"`
	Notes             string                     `json:"notes,omitempty"`
	CreatedAt         time.Time                  `json:"createdAt"`
	CreatedBy         string                     `json:"createdBy"`
	LastUpdatedAt     time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy     string                     `json:"lastUpdatedBy"`
}

// ToAssetResponse converts a domain.Asset to an AssetResponse DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:           a.AssetID,
		PatrimonialCode:   a.PatrimonialCode,
		LegacyCode:        a.LegacyCode,
		Description:       a.Description,
		CategoryID:        a.CategoryID,
		Brand:             a.Brand,
		Model:             a.Model,
		SerialNumber:      a.SerialNumber,
		Quantity:          a.Quantity,
		AcquisitionDate:   a.AcquisitionDate,
		AcquisitionReason: a.AcquisitionReason,
		PurchaseOrderRef:  a.PurchaseOrderRef,
		SupplierID:        a.SupplierID,
		AcquisitionValue:  a.AcquisitionValue,
		ValueUSD:          a.ValueUSD,
		PhysicalLocation:  a.PhysicalLocation,
		UnitID:            a.UnitID,
		CustodianName:     a.CustodianName,
		CustodianTitle:    a.CustodianTitle,
		UsefulLifeYears:   a.UsefulLifeYears,
		ResidualValue:     a.ResidualValue,
		Method:            a.Method,
		Status:            a.Status,
		Notes:             a.Notes,
		CreatedAt:         a.CreatedAt,
		CreatedBy:         a.CreatedBy,
		LastUpdatedAt:     a.LastUpdatedAt,
		LastUpdatedBy:     a.LastUpdatedBy,
	}
}

// ToAssetResponses converts a slice of domain assets to DTOs.
func ToAssetResponses(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
	Status     string `form:"status"`
	CategoryID string `form:"categoryID"`
	UnitID     string `form:"unitID"`
}

// ListAssetsResponse wraps the list of assets.
type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
}
