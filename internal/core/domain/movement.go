package domain

import "time"

// MovementType classifies an asset movement.
type MovementType string

const (
	MovementIncorporation MovementType = "INCORPORATION"
	MovementTransfer      MovementType = "TRANSFER"
	MovementDeaccession   MovementType = "DEACCESSION"
	MovementStatusUpdate  MovementType = "STATUS_UPDATE"
)

// ValidMovementType reports whether t is a known movement type.
func ValidMovementType(t MovementType) bool {
	switch t {
	case MovementIncorporation, MovementTransfer, MovementDeaccession, MovementStatusUpdate:
		return true
	}
	return false
}

// AssetMovement records a custody, location or lifecycle change of an asset.
// Creating a movement is the only path that mutates the affected asset's
// custody fields or deaccessions it.
type AssetMovement struct {
	MovementID string       `json:"movementID"`
	AssetID    string       `json:"assetID"`
	Type       MovementType `json:"type"`
	MovedAt    time.Time    `json:"movedAt"`

	// Transfer fields (nil for other movement types).
	FromUnitID        *string `json:"fromUnitID"`
	ToUnitID          *string `json:"toUnitID"`
	PreviousCustodian string  `json:"previousCustodian"`
	NewCustodian      string  `json:"newCustodian"`
	PreviousLocation  string  `json:"previousLocation"`
	NewLocation       string  `json:"newLocation"`

	// Deaccession / status update fields.
	Reason       string       `json:"reason"`
	ReferenceDoc string       `json:"referenceDoc"` // official letter or document number
	NewStatus    *AssetStatus `json:"newStatus"`    // STATUS_UPDATE only

	Notes string `json:"notes"`

	AuditFields
}
