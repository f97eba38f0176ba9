package repositories

import (
	"errors"

	"lokerhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this user and job")
)

// ApplicantRow is one row of the company's applicant list join. File URLs
// are derived by the service from the stored filenames.
type ApplicantRow struct {
	JobID              string `json:"jobId"`
	JobTitle           string `json:"jobTitle"`
	ApplicationID      string `json:"applicationId"`
	Status             string `json:"status"`
	CoverLetterUrl     string `json:"coverLetterUrl,omitempty"`
	CandidateID        string `json:"candidateId"`
	CandidateName      string `json:"candidateName"`
	Email              string `json:"email"`
	CurriculumVitaeUrl string `json:"curriculumVitaeUrl,omitempty"`

	CoverLetterPublicUrl     string `gorm:"-" json:"coverLetterPublicUrl,omitempty"`
	CurriculumVitaePublicUrl string `gorm:"-" json:"curriculumVitaePublicUrl,omitempty"`
}

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	Update(db *gorm.DB, application *models.Application) error

	FindByUserAndJob(db *gorm.DB, userID, jobID string) (*models.Application, error)

	// FindForCompany resolves an application only if the job belongs to the
	// given company (ownership chain User->Company->Job->Application).
	FindForCompany(db *gorm.DB, applicationID, jobID, companyID string) (*models.Application, error)

	// FindDetailForUser resolves the candidate's own application with job
	// and company attached.
	FindDetailForUser(db *gorm.DB, applicationID, jobID, userID string) (*models.Application, error)

	ListForJob(db *gorm.DB, companyID, jobID string, limit, offset int) ([]ApplicantRow, int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	var existing models.Application
	err := db.Where("user_id = ? AND job_id = ?", application.UserID, application.JobID).
		First(&existing).Error
	if err == nil {
		return ErrDuplicateApplication
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// The unique (user_id, job_id) index closes the race between the check
	// above and this insert.
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, application *models.Application) error {
	return db.Save(application).Error
}

func (r *ApplicationRepositoryImpl) FindByUserAndJob(db *gorm.DB, userID, jobID string) (*models.Application, error) {
	var application models.Application
	err := db.First(&application, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindForCompany(db *gorm.DB, applicationID, jobID, companyID string) (*models.Application, error) {
	var application models.Application
	err := db.
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.id = ? AND applications.job_id = ? AND jobs.company_id = ?",
			applicationID, jobID, companyID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindDetailForUser(db *gorm.DB, applicationID, jobID, userID string) (*models.Application, error) {
	var application models.Application
	err := db.
		Preload("Candidate").
		Preload("Job").
		Preload("Job.Company").
		First(&application, "id = ? AND job_id = ? AND user_id = ?", applicationID, jobID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListForJob(db *gorm.DB, companyID, jobID string, limit, offset int) ([]ApplicantRow, int64, error) {
	var rows []ApplicantRow
	err := db.Raw(`
		SELECT j.id AS job_id, j.title AS job_title,
		       a.id AS application_id, a.status, a.cover_letter_url,
		       u.id AS candidate_id, u.name AS candidate_name, u.email, u.curriculum_vitae_url
		FROM jobs j
		INNER JOIN applications a ON a.job_id = j.id
		LEFT JOIN users u ON a.user_id = u.id
		WHERE j.company_id = ? AND j.id = ?
		ORDER BY j.created_at DESC, a.created_at DESC
		LIMIT ? OFFSET ?`,
		companyID, jobID, limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = db.Raw(`
		SELECT COUNT(*)
		FROM jobs j
		INNER JOIN applications a ON a.job_id = j.id
		WHERE j.company_id = ? AND j.id = ?`,
		companyID, jobID,
	).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
