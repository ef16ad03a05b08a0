package domain

// AdministrativeUnit is an organizational unit assets are assigned to.
type AdministrativeUnit struct {
	UnitID   string `json:"unitID"`
	Name     string `json:"name"` // unique
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`

	AuditFields
}
