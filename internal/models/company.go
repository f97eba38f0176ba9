package models

type Company struct {
	BaseModel
	// Exactly one company per user; creation rejects a second row.
	UserID       string `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	Name         string `gorm:"not null" json:"name"`
	Website      string `gorm:"not null" json:"website"`
	Description  string `gorm:"type:text;not null" json:"description"`
	LogoUrl      string `json:"logoUrl,omitempty"`
	ThumbnailUrl string `json:"thumbnailUrl,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Jobs []Job `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
