package database

import (
	"lokerhub_backend/internal/logger"
	"lokerhub_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
	)
}

// SeedRoles makes sure the two fixed roles exist. Registration resolves
// roles by name, so running this is a startup requirement on a fresh DB.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{models.RoleCandidate, models.RoleCompany} {
		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			return err
		}
		logger.Info("Seeded role", "role", name)
	}
	return nil
}
