package dto

import "lokerhub_backend/internal/models"

type CreateApplicationRequest struct {
	Status string `form:"status" json:"status" validate:"omitempty,oneof=pending accepted rejected"`
}

type UpdateApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

// ApplicationResponse is the application plus the derived cover letter URL.
type ApplicationResponse struct {
	*models.Application
	CoverLetter string `json:"coverLetter,omitempty"`
}

// ApplicationDetailResponse adds both public file URLs for the detail view.
type ApplicationDetailResponse struct {
	*models.Application
	CoverLetterPublicUrl     string `json:"coverLetterPublicUrl,omitempty"`
	CurriculumVitaePublicUrl string `json:"curriculumVitaePublicUrl,omitempty"`
}
