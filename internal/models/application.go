package models

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type Application struct {
	BaseModel
	// One application per (user, job); the composite index backs the
	// duplicate check against concurrent submits.
	UserID         string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"userId"`
	JobID          string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"jobId"`
	Status         ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetterUrl string            `json:"coverLetterUrl,omitempty"`

	Candidate *User `gorm:"foreignKey:UserID" json:"candidate,omitempty"`
	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
