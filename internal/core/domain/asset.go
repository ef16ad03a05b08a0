package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus represents the physical/administrative condition of an asset.
type AssetStatus string

const (
	StatusNew           AssetStatus = "NEW"
	StatusGood          AssetStatus = "GOOD"
	StatusFair          AssetStatus = "FAIR"
	StatusPoor          AssetStatus = "POOR"
	StatusUnderRepair   AssetStatus = "UNDER_REPAIR"
	StatusObsolete      AssetStatus = "OBSOLETE"
	StatusDeaccessioned AssetStatus = "DEACCESSIONED"
)

// DepreciationMethod identifies the monthly depreciation formula applied to an asset.
type DepreciationMethod string

const (
	MethodStraightLine     DepreciationMethod = "STRAIGHT_LINE"
	MethodDecliningBalance DepreciationMethod = "DECLINING_BALANCE"
)

// AcquisitionReason records how the institution came to own an asset.
type AcquisitionReason string

const (
	AcquisitionDirectPurchase AcquisitionReason = "DIRECT_PURCHASE"
	AcquisitionPublicTender   AcquisitionReason = "PUBLIC_TENDER"
	AcquisitionPaymentInKind  AcquisitionReason = "PAYMENT_IN_KIND"
	AcquisitionDonation       AcquisitionReason = "DONATION"
	AcquisitionTransfer       AcquisitionReason = "TRANSFER"
	AcquisitionConstruction   AcquisitionReason = "OWN_CONSTRUCTION"
	AcquisitionRecovery       AcquisitionReason = "RECOVERY"
	AcquisitionLoan           AcquisitionReason = "LOAN"
	AcquisitionLeaseToOwn     AcquisitionReason = "LEASE_TO_OWN"
	AcquisitionBequest        AcquisitionReason = "BEQUEST"
	AcquisitionOther          AcquisitionReason = "OTHER"
)

// depreciableStatuses are the states in which an asset keeps accruing book depreciation.
// OBSOLETE and DEACCESSIONED assets remain on the books but accrue nothing further.
var depreciableStatuses = map[AssetStatus]bool{
	StatusNew:         true,
	StatusGood:        true,
	StatusFair:        true,
	StatusPoor:        true,
	StatusUnderRepair: true,
}

// Asset represents a fixed asset tracked by the institution.
type Asset struct {
	AssetID         string             `json:"assetID"`
	PatrimonialCode string             `json:"patrimonialCode"` // system generated, unique
	LegacyCode      string             `json:"legacyCode"`      // code from a previous inventory system, if any
	Description     string             `json:"description"`
	CategoryID      *string            `json:"categoryID"`
	Brand           string             `json:"brand"`
	Model           string             `json:"model"`
	SerialNumber    *string            `json:"serialNumber"` // unique when present
	Quantity        int                `json:"quantity"`

	AcquisitionDate   time.Time         `json:"acquisitionDate"`
	AcquisitionReason AcquisitionReason `json:"acquisitionReason"`
	PurchaseOrderRef  string            `json:"purchaseOrderRef"`
	SupplierID        *string           `json:"supplierID"`

	// AcquisitionValue is the depreciable base's ceiling, fixed at acquisition.
	AcquisitionValue decimal.Decimal  `json:"acquisitionValue"`
	ValueUSD         *decimal.Decimal `json:"valueUSD"`

	PhysicalLocation string  `json:"physicalLocation"`
	UnitID           *string `json:"unitID"` // current administrative unit
	CustodianName    string  `json:"custodianName"`
	CustodianTitle   string  `json:"custodianTitle"`

	// Depreciation parameters. An asset with a nil method or nil/zero useful
	// life is simply not depreciable; it is never an error.
	UsefulLifeYears *int                `json:"usefulLifeYears"`
	ResidualValue   decimal.Decimal     `json:"residualValue"`
	Method          *DepreciationMethod `json:"method"`

	Status AssetStatus `json:"status"`
	Notes  string      `json:"notes"`

	AuditFields
}

// IsDepreciable reports whether the asset carries a complete depreciation setup.
func (a *Asset) IsDepreciable() bool {
	return a.Method != nil && a.UsefulLifeYears != nil && *a.UsefulLifeYears > 0
}

// EligibleForDepreciation reports whether the asset should be considered by a
// depreciation run: it must be depreciable and in an accruing status.
func (a *Asset) EligibleForDepreciation() bool {
	return a.IsDepreciable() && depreciableStatuses[a.Status]
}

// ValidStatus reports whether s is one of the known asset statuses.
func ValidStatus(s AssetStatus) bool {
	switch s {
	case StatusNew, StatusGood, StatusFair, StatusPoor, StatusUnderRepair, StatusObsolete, StatusDeaccessioned:
		return true
	}
	return false
}
