package domain

// Supplier is a vendor assets were acquired from.
type Supplier struct {
	SupplierID    string `json:"supplierID"`
	Name          string `json:"name"` // unique
	TaxID         string `json:"taxID"`
	FiscalAddress string `json:"fiscalAddress"`
	ContactName   string `json:"contactName"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	IsActive      bool   `json:"isActive"`

	AuditFields
}
