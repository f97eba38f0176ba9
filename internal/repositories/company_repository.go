package repositories

import (
	"errors"

	"lokerhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists for this user")
)

type CompanyRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.Company, error)
	Create(db *gorm.DB, company *models.Company) error
	Update(db *gorm.DB, company *models.Company) error

	// Delete cascades to the company's jobs and their applications inside
	// one transaction. File cleanup is the caller's job.
	Delete(db *gorm.DB, companyID string) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	var existing models.Company
	if err := db.Where("user_id = ?", company.UserID).First(&existing).Error; err == nil {
		return ErrCompanyAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(company).Error
}

func (r *CompanyRepositoryImpl) Update(db *gorm.DB, company *models.Company) error {
	return db.Save(company).Error
}

func (r *CompanyRepositoryImpl) Delete(db *gorm.DB, companyID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("job_id IN (?)", tx.Model(&models.Job{}).Select("id").Where("company_id = ?", companyID)).
			Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", companyID).Delete(&models.Job{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Company{}, "id = ?", companyID).Error
	})
}
