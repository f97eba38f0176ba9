package repositories

import (
	"errors"

	"lokerhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobListRow is one row of the job list join queries. URLs and company
// details beyond the name come from elsewhere; the query stays lean.
type JobListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, job *models.Job) error

	// FindByIDForCompany scopes the row by the owning company; this is the
	// resource-level authorization beyond the role check.
	FindByIDForCompany(db *gorm.DB, id, companyID string) (*models.Job, error)
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindOpenByID(db *gorm.DB, id string) (*models.Job, error)

	ListByCompany(db *gorm.DB, companyID string, limit, offset int) ([]JobListRow, int64, error)
	ListPublic(db *gorm.DB, search string, limit, offset int) ([]JobListRow, int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, job *models.Job) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
}

func (r *JobRepositoryImpl) FindByIDForCompany(db *gorm.DB, id, companyID string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Company").First(&job, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Company").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindOpenByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ? AND status = ?", id, models.JobStatusOpen).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListByCompany(db *gorm.DB, companyID string, limit, offset int) ([]JobListRow, int64, error) {
	var rows []JobListRow
	err := db.Raw(`
		SELECT j.id, j.title, j.description, j.location, j.status,
		       c.id AS company_id, c.name AS company_name
		FROM jobs j
		LEFT JOIN companies c ON c.id = j.company_id
		WHERE j.company_id = ?
		ORDER BY j.created_at DESC
		LIMIT ? OFFSET ?`,
		companyID, limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = db.Raw(`
		SELECT COUNT(*)
		FROM jobs j
		WHERE j.company_id = ?`,
		companyID,
	).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *JobRepositoryImpl) ListPublic(db *gorm.DB, search string, limit, offset int) ([]JobListRow, int64, error) {
	searchQuery := "%" + search + "%"

	var rows []JobListRow
	err := db.Raw(`
		SELECT j.id, j.title, j.description, j.location, j.status,
		       c.id AS company_id, c.name AS company_name
		FROM jobs j
		LEFT JOIN companies c ON c.id = j.company_id
		WHERE j.status = 'open'
		  AND (j.title LIKE ? OR j.location LIKE ?)
		ORDER BY j.created_at DESC
		LIMIT ? OFFSET ?`,
		searchQuery, searchQuery, limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = db.Raw(`
		SELECT COUNT(*)
		FROM jobs j
		WHERE j.status = 'open'
		  AND (j.title LIKE ? OR j.location LIKE ?)`,
		searchQuery, searchQuery,
	).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
