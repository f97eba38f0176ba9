package dto

import "lokerhub_backend/internal/models"

// Field limits carried over from the public API contract.
type CreateCompanyRequest struct {
	Name        string `form:"name" json:"name" validate:"required,min=4,max=255"`
	Website     string `form:"website" json:"website" validate:"required,min=4,max=255"`
	Description string `form:"description" json:"description" validate:"required,min=4,max=5000"`
}

type UpdateCompanyRequest struct {
	Name        string `form:"name" json:"name" validate:"omitempty,min=4,max=255"`
	Website     string `form:"website" json:"website" validate:"omitempty,min=4,max=255"`
	Description string `form:"description" json:"description" validate:"omitempty,min=4,max=5000"`
}

// CompanyResponse is the company plus derived public file URLs.
type CompanyResponse struct {
	*models.Company
	Logo      string `json:"logo,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}
