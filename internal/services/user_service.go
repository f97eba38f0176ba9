package services

import (
	"context"

	"lokerhub_backend/internal/auth"
	"lokerhub_backend/internal/logger"
	"lokerhub_backend/internal/repositories"
	"lokerhub_backend/internal/services/dto"
	"lokerhub_backend/internal/storage"
	"lokerhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdatePassword(db *gorm.DB, userID string, req *dto.UpdatePasswordRequest) (*dto.ProfileResponse, error)

	// UpdateProfile applies the optional name change and, when cvFilename is
	// set, swaps the stored CV (the previous file is deleted from disk).
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest, cvFilename string) (*dto.ProfileResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	files    storage.Storage
}

func NewUserService(userRepo repositories.UserRepository, files storage.Storage) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		files:    files,
	}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		User:            user,
		CurriculumVitae: s.files.PublicURL(storage.KindCurriculumVitae, user.CurriculumVitaeUrl),
	}, nil
}

func (s *UserServiceImpl) UpdatePassword(db *gorm.DB, userID string, req *dto.UpdatePasswordRequest) (*dto.ProfileResponse, error) {
	if req.NewPassword != req.ConfirmPassword {
		return nil, apperrors.NewBadRequestError("Password baru dan konfirmasi password tidak sama")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.Password) {
		return nil, apperrors.NewBadRequestError("Password lama anda salah")
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.Password = hashedPassword
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		User:            user,
		CurriculumVitae: s.files.PublicURL(storage.KindCurriculumVitae, user.CurriculumVitaeUrl),
	}, nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest, cvFilename string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if cvFilename != "" {
		if user.CurriculumVitaeUrl != "" {
			if err := s.files.Delete(context.Background(), storage.KindCurriculumVitae, user.CurriculumVitaeUrl); err != nil {
				logger.WithError(err).Warn("Failed to delete previous CV", "file", user.CurriculumVitaeUrl)
			}
		}
		user.CurriculumVitaeUrl = cvFilename
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		User:            user,
		CurriculumVitae: s.files.PublicURL(storage.KindCurriculumVitae, user.CurriculumVitaeUrl),
	}, nil
}
