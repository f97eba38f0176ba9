package handlers

import (
	"net/http"
	"strings"

	"lokerhub_backend/internal/services"
	"lokerhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration payload"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusCreated, "Registrasi Berhasil", user)
}

// Login godoc
// @Summary      Log in and receive a token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Tokens ride at the top level next to the user payload.
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Login Berhasil",
		"data":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

// RefreshToken reads the refresh JWT from the Authorization header and
// answers with a fresh pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Refresh token required",
		})
		return
	}

	db := h.GetDB(c)

	pair, err := h.authService.RefreshToken(db, token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Token refreshed",
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// SendVerificationToken issues a fresh email verification code for the
// authenticated user.
func (h *AuthHandler) SendVerificationToken(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.SendVerificationCode(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Send verification token successfully", user)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.VerifyEmail(db, req.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Historical quirk of the contract: the verified user is returned under
	// "user", not "data".
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email verified successfully",
		"user":    user,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.ForgotPassword(db, req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Password reset link sent to your email", nil)
}

// ResetPassword redeems the single-use token carried in the URL path.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.ResetPassword(db, token, req.Password); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Password reset success", nil)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
