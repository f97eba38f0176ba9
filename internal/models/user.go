package models

import "time"

// Role names are fixed; the table is seeded at startup.
const (
	RoleCandidate = "candidate"
	RoleCompany   = "company"
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`

	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}

type User struct {
	BaseModel
	RoleID             uint       `gorm:"not null;index" json:"roleId"`
	Name               string     `gorm:"not null" json:"name"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	Password           string     `gorm:"not null" json:"-"`
	CurriculumVitaeUrl string     `json:"curriculumVitaeUrl,omitempty"`
	LastLogin          *time.Time `json:"lastLogin,omitempty"`
	IsVerified         bool       `gorm:"default:false" json:"isVerified"`

	// Single-use secrets; both members of a pair are cleared together.
	VerificationToken          *string    `json:"-"`
	VerificationTokenExpiresAt *time.Time `json:"-"`
	ResetPasswordToken         *string    `json:"-"`
	ResetPasswordExpiresAt     *time.Time `json:"-"`

	// Relations
	Role         *Role         `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Company      *Company      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
