package services

import (
	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/repositories"
	"lokerhub_backend/internal/services/dto"
	"lokerhub_backend/internal/storage"
	"lokerhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// Create enforces, in order: the candidate has an uploaded CV, the job
	// is still open, no prior application by this candidate exists, and a
	// cover letter was attached. The caller is responsible for deleting the
	// stored cover letter file when an error is returned.
	Create(db *gorm.DB, userID, jobID string, req *dto.CreateApplicationRequest, coverLetterFilename string) (*dto.ApplicationResponse, error)

	// ListForJob lists a job's applicants, scoped by the acting user's
	// company (ownership chain User->Company->Job->Application).
	ListForJob(db *gorm.DB, userID, jobID string, page dto.PageQuery) (*dto.Paginated, error)

	// UpdateStatus moves an application between pending/accepted/rejected.
	// The only guard is that the acting user's company owns the job.
	UpdateStatus(db *gorm.DB, userID, jobID, applicationID string, req *dto.UpdateApplicationRequest) (*models.Application, error)

	// Detail returns the candidate's own application.
	Detail(db *gorm.DB, userID, jobID, applicationID string) (*dto.ApplicationDetailResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	companyRepo     repositories.CompanyRepository
	userRepo        repositories.UserRepository
	files           storage.Storage
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	files storage.Storage,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
		userRepo:        userRepo,
		files:           files,
	}
}

func (s *ApplicationServiceImpl) Create(db *gorm.DB, userID, jobID string, req *dto.CreateApplicationRequest, coverLetterFilename string) (*dto.ApplicationResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if user.CurriculumVitaeUrl == "" {
		return nil, apperrors.NewBadRequestError("Silahkan upload Daftar Riwayat Hidup anda terlebih dulu")
	}

	job, err := s.jobRepo.FindOpenByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Pekerjaan ini telah ditutup.")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.applicationRepo.FindByUserAndJob(db, userID, job.ID); err == nil {
		return nil, apperrors.NewConflictError("application", "Anda sudah melamar pekerjaan ini sebelumnya.")
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if coverLetterFilename == "" {
		return nil, apperrors.NewNotFoundError("application", "Surat lamaran wajib diunggah")
	}

	status := models.ApplicationStatus(req.Status)
	if status == "" {
		status = models.ApplicationStatusPending
	}

	application := &models.Application{
		UserID:         userID,
		JobID:          job.ID,
		Status:         status,
		CoverLetterUrl: coverLetterFilename,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.NewConflictError("application", "Anda sudah melamar pekerjaan ini sebelumnya.")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplicationResponse{
		Application: application,
		CoverLetter: s.files.PublicURL(storage.KindCoverLetter, application.CoverLetterUrl),
	}, nil
}

func (s *ApplicationServiceImpl) ListForJob(db *gorm.DB, userID, jobID string, page dto.PageQuery) (*dto.Paginated, error) {
	company, err := s.companyRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Perusahaan tidak ditemukan untuk user ini")
		}
		return nil, apperrors.InternalError(err)
	}

	rows, total, err := s.applicationRepo.ListForJob(db, company.ID, jobID, page.PerPage, page.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Public URLs are derived here, never stored or built in SQL.
	for i := range rows {
		if rows[i].CoverLetterUrl != "" {
			rows[i].CoverLetterPublicUrl = s.files.PublicURL(storage.KindCoverLetter, rows[i].CoverLetterUrl)
		}
		if rows[i].CurriculumVitaeUrl != "" {
			rows[i].CurriculumVitaePublicUrl = s.files.PublicURL(storage.KindCurriculumVitae, rows[i].CurriculumVitaeUrl)
		}
	}

	if rows == nil {
		rows = []repositories.ApplicantRow{}
	}
	return dto.NewPaginated(page, total, rows), nil
}

func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, userID, jobID, applicationID string, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	company, err := s.companyRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Perusahaan tidak ditemukan untuk user ini")
		}
		return nil, apperrors.InternalError(err)
	}

	application, err := s.applicationRepo.FindForCompany(db, applicationID, jobID, company.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Data lamaran tidak ditemukan.")
		}
		return nil, apperrors.InternalError(err)
	}

	application.Status = models.ApplicationStatus(req.Status)
	if err := s.applicationRepo.Update(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return application, nil
}

func (s *ApplicationServiceImpl) Detail(db *gorm.DB, userID, jobID, applicationID string) (*dto.ApplicationDetailResponse, error) {
	application, err := s.applicationRepo.FindDetailForUser(db, applicationID, jobID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Data lamaran tidak ditemukan.")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ApplicationDetailResponse{
		Application:          application,
		CoverLetterPublicUrl: s.files.PublicURL(storage.KindCoverLetter, application.CoverLetterUrl),
	}
	if application.Candidate != nil && application.Candidate.CurriculumVitaeUrl != "" {
		resp.CurriculumVitaePublicUrl = s.files.PublicURL(storage.KindCurriculumVitae, application.Candidate.CurriculumVitaeUrl)
	}

	return resp, nil
}
