package dto

import (
	"time"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// CreateMovementRequest defines the data needed to record an asset movement.
type CreateMovementRequest struct {
	AssetID      string              `json:"assetID" binding:"required"`
	Type         domain.MovementType `json:"type" binding:"required,oneof=INCORPORATION TRANSFER DEACCESSION STATUS_UPDATE"`
	MovedAt      *time.Time          `json:"movedAt"`
	ToUnitID     *string             `json:"toUnitID"`
	NewCustodian string              `json:"newCustodian"`
	NewLocation  string              `json:"newLocation"`
	Reason       string              `json:"reason"`
	ReferenceDoc string              `json:"referenceDoc"`
	NewStatus    *domain.AssetStatus `json:"newStatus" binding:"omitempty,oneof=NEW GOOD FAIR POOR UNDER_REPAIR OBSOLETE"`
	Notes        string              `json:"notes"`
}

// MovementResponse mirrors domain.AssetMovement for API output.
type MovementResponse struct {
	MovementID        string              `json:"movementID"`
	AssetID           string              `json:"assetID"`
	Type              domain.MovementType `json:"type"`
	MovedAt           time.Time           `json:"movedAt"`
	FromUnitID        *string             `json:"fromUnitID,omitempty"`
	ToUnitID          *string             `json:"toUnitID,omitempty"`
	PreviousCustodian string              `json:"previousCustodian,omitempty"`
	NewCustodian      string              `json:"newCustodian,omitempty"`
	PreviousLocation  string              `json:"previousLocation,omitempty"`
	NewLocation       string              `json:"newLocation,omitempty"`
	Reason            string              `json:"reason,omitempty"`
	ReferenceDoc      string              `json:"referenceDoc,omitempty"`
	NewStatus         *domain.AssetStatus `json:"newStatus,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	CreatedBy         string              `json:"createdBy"`
}

// ToMovementResponse converts a domain movement to its DTO.
func ToMovementResponse(m *domain.AssetMovement) MovementResponse {
	return MovementResponse{
		MovementID:        m.MovementID,
		AssetID:           m.AssetID,
		Type:              m.Type,
		MovedAt:           m.MovedAt,
		FromUnitID:        m.FromUnitID,
		ToUnitID:          m.ToUnitID,
		PreviousCustodian: m.PreviousCustodian,
		NewCustodian:      m.NewCustodian,
		PreviousLocation:  m.PreviousLocation,
		NewLocation:       m.NewLocation,
		Reason:            m.Reason,
		ReferenceDoc:      m.ReferenceDoc,
		NewStatus:         m.NewStatus,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		CreatedBy:         m.CreatedBy,
	}
}

// ToMovementResponses converts a slice of domain movements to DTOs.
func ToMovementResponses(movements []domain.AssetMovement) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i := range movements {
		res[i] = ToMovementResponse(&movements[i])
	}
	return res
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	Limit   int    `form:"limit,default=20"`
	Offset  int    `form:"offset,default=0"`
	AssetID string `form:"assetID"`
	Type    string `form:"type"`
	From    string `form:"from" time_format:"2006-01-02"`
	To      string `form:"to" time_format:"2006-01-02"`
}

// ListMovementsResponse wraps the list of movements.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
}
