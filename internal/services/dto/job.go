package dto

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,min=4,max=255"`
	Description string `json:"description" validate:"required,min=4,max=5000"`
	Location    string `json:"location" validate:"required,min=4,max=1000"`
	Status      string `json:"status" validate:"omitempty,oneof=open closed"`
}

type UpdateJobRequest struct {
	Title       string `json:"title" validate:"omitempty,min=4,max=255"`
	Description string `json:"description" validate:"omitempty,min=4,max=5000"`
	Location    string `json:"location" validate:"omitempty,min=4,max=1000"`
	Status      string `json:"status" validate:"omitempty,oneof=open closed"`
}
