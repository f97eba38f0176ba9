package models

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

type Job struct {
	BaseModel
	CompanyID   string    `gorm:"type:uuid;not null;index" json:"companyId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"type:text;not null" json:"location"`
	Status      JobStatus `gorm:"type:varchar(20);default:'open'" json:"status"`

	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
