package handlers

import (
	"net/http"

	"lokerhub_backend/internal/middleware"
	"lokerhub_backend/internal/services"
	"lokerhub_backend/internal/services/dto"
	"lokerhub_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	files       storage.Storage
}

func NewUserHandler(base *BaseHandler, userService services.UserService, files storage.Storage) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		files:       files,
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "User Profile Berhasil Didapatkan", profile)
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.UpdatePassword(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Update Password Berhasil", profile)
}

// UpdateProfile accepts multipart form data; the curriculumVitae file is
// already on disk thanks to the upload middleware.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		middleware.CleanupUploads(c, h.files)
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_Form(c, &req) {
		middleware.CleanupUploads(c, h.files)
		return
	}

	db := h.GetDB(c)
	cvFilename := middleware.UploadedFile(c, "curriculumVitae")

	profile, err := h.userService.UpdateProfile(db, userID, &req, cvFilename)
	if err != nil {
		middleware.CleanupUploads(c, h.files)
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Update Profile Berhasil", profile)
}
