package services

import (
	"context"

	"lokerhub_backend/internal/logger"
	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/repositories"
	"lokerhub_backend/internal/services/dto"
	"lokerhub_backend/internal/storage"
	"lokerhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	// Create enforces the one-company-per-user invariant. logoFilename and
	// thumbnailFilename must both be present (already stored on disk).
	Create(db *gorm.DB, userID string, req *dto.CreateCompanyRequest, logoFilename, thumbnailFilename string) (*dto.CompanyResponse, error)

	Detail(db *gorm.DB, userID string) (*dto.CompanyResponse, error)
	Update(db *gorm.DB, userID string, req *dto.UpdateCompanyRequest, logoFilename, thumbnailFilename string) (*dto.CompanyResponse, error)

	// Delete removes logo/thumbnail from disk, then cascades the row
	// deletion to jobs and applications.
	Delete(db *gorm.DB, userID string) (*models.Company, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
	files       storage.Storage
}

func NewCompanyService(companyRepo repositories.CompanyRepository, files storage.Storage) CompanyService {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		files:       files,
	}
}

func (s *CompanyServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateCompanyRequest, logoFilename, thumbnailFilename string) (*dto.CompanyResponse, error) {
	if logoFilename == "" || thumbnailFilename == "" {
		return nil, apperrors.NewBadRequestError("Gambar wajib diunggah.")
	}

	company := &models.Company{
		UserID:       userID,
		Name:         req.Name,
		Website:      req.Website,
		Description:  req.Description,
		LogoUrl:      logoFilename,
		ThumbnailUrl: thumbnailFilename,
	}

	if err := s.companyRepo.Create(db, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.NewConflictError("company", "Anda sudah mendaftarkan perusahaan")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.toResponse(company), nil
}

func (s *CompanyServiceImpl) Detail(db *gorm.DB, userID string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Perusahaan belum dibuat")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.toResponse(company), nil
}

func (s *CompanyServiceImpl) Update(db *gorm.DB, userID string, req *dto.UpdateCompanyRequest, logoFilename, thumbnailFilename string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Perusahaan tidak ditemukan")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Description != "" {
		company.Description = req.Description
	}

	if logoFilename != "" {
		s.deleteFile(storage.KindLogo, company.LogoUrl)
		company.LogoUrl = logoFilename
	}
	if thumbnailFilename != "" {
		s.deleteFile(storage.KindThumbnail, company.ThumbnailUrl)
		company.ThumbnailUrl = thumbnailFilename
	}

	if err := s.companyRepo.Update(db, company); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.toResponse(company), nil
}

func (s *CompanyServiceImpl) Delete(db *gorm.DB, userID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Perusahaan tidak ditemukan")
		}
		return nil, apperrors.InternalError(err)
	}

	// Files are cleaned explicitly; the row cascade does not touch disk.
	s.deleteFile(storage.KindLogo, company.LogoUrl)
	s.deleteFile(storage.KindThumbnail, company.ThumbnailUrl)

	if err := s.companyRepo.Delete(db, company.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return company, nil
}

func (s *CompanyServiceImpl) deleteFile(kind, filename string) {
	if filename == "" {
		return
	}
	if err := s.files.Delete(context.Background(), kind, filename); err != nil {
		logger.WithError(err).Warn("Failed to delete company file", "kind", kind, "file", filename)
	}
}

func (s *CompanyServiceImpl) toResponse(company *models.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Company:   company,
		Logo:      s.files.PublicURL(storage.KindLogo, company.LogoUrl),
		Thumbnail: s.files.PublicURL(storage.KindThumbnail, company.ThumbnailUrl),
	}
}
