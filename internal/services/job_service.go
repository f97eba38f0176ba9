package services

import (
	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/repositories"
	"lokerhub_backend/internal/services/dto"
	"lokerhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	// Company-scoped operations resolve the acting user's company first;
	// that lookup is the resource-level authorization.
	Create(db *gorm.DB, userID string, req *dto.CreateJobRequest) (*models.Job, error)
	ListForCompany(db *gorm.DB, userID string, page dto.PageQuery) (*dto.Paginated, error)
	Detail(db *gorm.DB, userID, jobID string) (*models.Job, error)
	Update(db *gorm.DB, userID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(db *gorm.DB, userID, jobID string) (*models.Job, error)

	// Public listing only surfaces open jobs.
	ListPublic(db *gorm.DB, search string, page dto.PageQuery) (*dto.Paginated, error)
	DetailPublic(db *gorm.DB, jobID string) (*models.Job, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
}

func NewJobService(jobRepo repositories.JobRepository, companyRepo repositories.CompanyRepository) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func (s *JobServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	company, err := s.ownedCompany(db, userID)
	if err != nil {
		return nil, err
	}

	status := models.JobStatus(req.Status)
	if status == "" {
		status = models.JobStatusOpen
	}

	job := &models.Job{
		CompanyID:   company.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Status:      status,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

func (s *JobServiceImpl) ListForCompany(db *gorm.DB, userID string, page dto.PageQuery) (*dto.Paginated, error) {
	company, err := s.ownedCompany(db, userID)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.jobRepo.ListByCompany(db, company.ID, page.PerPage, page.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if rows == nil {
		rows = []repositories.JobListRow{}
	}
	return dto.NewPaginated(page, total, rows), nil
}

func (s *JobServiceImpl) Detail(db *gorm.DB, userID, jobID string) (*models.Job, error) {
	company, err := s.ownedCompany(db, userID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByIDForCompany(db, jobID, company.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Pekerjaan tidak ditemukan")
		}
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

func (s *JobServiceImpl) Update(db *gorm.DB, userID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.Detail(db, userID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

func (s *JobServiceImpl) Delete(db *gorm.DB, userID, jobID string) (*models.Job, error) {
	job, err := s.Detail(db, userID, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.Delete(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

func (s *JobServiceImpl) ListPublic(db *gorm.DB, search string, page dto.PageQuery) (*dto.Paginated, error) {
	rows, total, err := s.jobRepo.ListPublic(db, search, page.PerPage, page.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if rows == nil {
		rows = []repositories.JobListRow{}
	}
	return dto.NewPaginated(page, total, rows), nil
}

func (s *JobServiceImpl) DetailPublic(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Pekerjaan tidak ditemukan")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ownedCompany(db *gorm.DB, userID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Perusahaan tidak ditemukan untuk user ini")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}
