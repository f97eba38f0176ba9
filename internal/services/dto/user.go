package dto

import "lokerhub_backend/internal/models"

type UpdatePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type UpdateProfileRequest struct {
	Name string `form:"name" json:"name" validate:"omitempty,min=2,max=255"`
}

// ProfileResponse is the user plus the derived public URL of their CV.
type ProfileResponse struct {
	*models.User
	CurriculumVitae string `json:"curriculumVitae,omitempty"`
}
