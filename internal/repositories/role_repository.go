package repositories

import (
	"errors"

	"lokerhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRoleNotFound = errors.New("role not found")

type RoleRepository interface {
	FindByName(db *gorm.DB, name string) (*models.Role, error)
}

type RoleRepositoryImpl struct{}

func NewRoleRepository() RoleRepository {
	return &RoleRepositoryImpl{}
}

func (r *RoleRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Role, error) {
	var role models.Role
	err := db.First(&role, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}
