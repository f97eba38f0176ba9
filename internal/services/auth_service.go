package services

import (
	"fmt"
	"net/http"
	"time"

	"lokerhub_backend/internal/auth"
	"lokerhub_backend/internal/email"
	"lokerhub_backend/internal/logger"
	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/repositories"
	"lokerhub_backend/internal/services/dto"
	"lokerhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Single-use secret windows.
const (
	verificationCodeTTL = 24 * time.Hour
	resetTokenTTL       = 1 * time.Hour
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// RefreshToken redeems a refresh JWT for a brand-new token pair. There
	// is no rotation tracking: the old refresh token stays valid until it
	// expires. Accepted trade-off, documented in DESIGN.md.
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.TokenPairResponse, error)

	// SendVerificationCode issues a 6-digit code with a 24-hour window.
	// Fails when the user is already verified.
	SendVerificationCode(db *gorm.DB, userID string) (*models.User, error)

	// VerifyEmail redeems a verification code. Wrong, expired and already
	// consumed codes all collapse to the same generic error.
	VerifyEmail(db *gorm.DB, code string) (*models.User, error)

	ForgotPassword(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	roleRepo  repositories.RoleRepository
	tokens    *auth.TokenIssuer
	mail      email.Sender
	clientURL string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	tokens *auth.TokenIssuer,
	mail email.Sender,
	clientURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		tokens:    tokens,
		mail:      mail,
		clientURL: clientURL,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	role, err := s.roleRepo.FindByName(db, req.RoleName)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoleNotFound) {
			return nil, apperrors.NewBadRequestError("Role tidak ditemukan")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.NewConflictError("user", "User sudah ada")
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewBadRequestError("Password dan Konfirmasi Password tidak sama")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		RoleID:   role.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("user", "User sudah ada")
		}
		return nil, apperrors.InternalError(err)
	}

	user.Role = role
	return user, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth",
				"Email dan Password salah", http.StatusBadRequest)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth",
			"Email dan Password salah", http.StatusBadRequest)
	}

	accessToken, refreshToken, err := s.issueTokenPair(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(db, user); err != nil {
		logger.WithError(err).Warn("Failed to stamp last login", "user_id", user.ID)
	}

	return &dto.LoginResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidToken, "auth",
			"Invalid or expired refresh token", http.StatusUnauthorized)
	}

	user, err := s.userRepo.FindByID(db, claims.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	accessToken, newRefreshToken, err := s.issueTokenPair(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (s *AuthServiceImpl) SendVerificationCode(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsVerified {
		return nil, apperrors.NewBadRequestError("Email sudah diverifikasi.")
	}

	code := auth.GenerateVerificationCode()
	expiresAt := time.Now().Add(verificationCodeTTL)
	user.VerificationToken = &code
	user.VerificationTokenExpiresAt = &expiresAt

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mail.SendVerification(user.Email, code); err != nil {
		logger.WithError(err).Error("Failed to send verification email", "email", user.Email)
	}

	return user, nil
}

func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, code string) (*models.User, error) {
	user, err := s.userRepo.FindByVerificationToken(db, code, time.Now())
	if err != nil {
		// Wrong code, expired code and consumed code are indistinguishable
		// on purpose: no oracle for attackers.
		return nil, apperrors.NewBadRequestError("Invalid or expired verification code")
	}

	user.IsVerified = true
	user.VerificationToken = nil
	user.VerificationTokenExpiresAt = nil

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mail.SendWelcome(user.Email, user.Name); err != nil {
		logger.WithError(err).Error("Failed to send welcome email", "email", user.Email)
	}

	return user, nil
}

func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewBadRequestError("User not found")
		}
		return apperrors.InternalError(err)
	}

	token := auth.GenerateResetToken()
	expiresAt := time.Now().Add(resetTokenTTL)
	user.ResetPasswordToken = &token
	user.ResetPasswordExpiresAt = &expiresAt

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.clientURL, token)
	if err := s.mail.SendPasswordReset(user.Email, resetURL); err != nil {
		logger.WithError(err).Error("Failed to send password reset email", "email", user.Email)
	}

	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(db, token, time.Now())
	if err != nil {
		return apperrors.NewBadRequestError("Invalid or expired reset token")
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.Password = hashedPassword
	user.ResetPasswordToken = nil
	user.ResetPasswordExpiresAt = nil

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.mail.SendResetSuccess(user.Email); err != nil {
		logger.WithError(err).Error("Failed to send reset success email", "email", user.Email)
	}

	return nil
}

func (s *AuthServiceImpl) issueTokenPair(user *models.User) (string, string, error) {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, roleName)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID, roleName)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
