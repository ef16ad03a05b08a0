package dto

import (
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// --- Categories ---

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest defines the fields a category update may change.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse mirrors domain.Category for API output.
type CategoryResponse struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToCategoryResponse converts a domain category to its DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name, Description: c.Description}
}

// --- Suppliers ---

// CreateSupplierRequest defines the data needed to register a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	TaxID         string `json:"taxID"`
	FiscalAddress string `json:"fiscalAddress"`
	ContactName   string `json:"contactName"`
	ContactEmail  string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone  string `json:"contactPhone"`
}

// UpdateSupplierRequest defines the fields a supplier update may change.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	TaxID         *string `json:"taxID"`
	FiscalAddress *string `json:"fiscalAddress"`
	ContactName   *string `json:"contactName"`
	ContactEmail  *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone  *string `json:"contactPhone"`
	IsActive      *bool   `json:"isActive"`
}

// SupplierResponse mirrors domain.Supplier for API output.
type SupplierResponse struct {
	SupplierID    string `json:"supplierID"`
	Name          string `json:"name"`
	TaxID         string `json:"taxID,omitempty"`
	FiscalAddress string `json:"fiscalAddress,omitempty"`
	ContactName   string `json:"contactName,omitempty"`
	ContactEmail  string `json:"contactEmail,omitempty"`
	ContactPhone  string `json:"contactPhone,omitempty"`
	IsActive      bool   `json:"isActive"`
}

// ToSupplierResponse converts a domain supplier to its DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		Name:          s.Name,
		TaxID:         s.TaxID,
		FiscalAddress: s.FiscalAddress,
		ContactName:   s.ContactName,
		ContactEmail:  s.ContactEmail,
		ContactPhone:  s.ContactPhone,
		IsActive:      s.IsActive,
	}
}

// --- Administrative units ---

// CreateUnitRequest defines the data needed to register an administrative unit.
type CreateUnitRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// UpdateUnitRequest defines the fields a unit update may change.
type UpdateUnitRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	IsActive *bool   `json:"isActive"`
}

// UnitResponse mirrors domain.AdministrativeUnit for API output.
type UnitResponse struct {
	UnitID   string `json:"unitID"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	IsActive bool   `json:"isActive"`
}

// ToUnitResponse converts a domain unit to its DTO.
func ToUnitResponse(u *domain.AdministrativeUnit) UnitResponse {
	return UnitResponse{UnitID: u.UnitID, Name: u.Name, Location: u.Location, IsActive: u.IsActive}
}
