package handlers

import (
	"net/http"

	"lokerhub_backend/internal/middleware"
	"lokerhub_backend/internal/services"
	"lokerhub_backend/internal/services/dto"
	"lokerhub_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	files              storage.Storage
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, files storage.Storage) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		files:              files,
	}
}

// Create submits a candidate's application for a job. The coverLetter file
// is stored by the upload middleware before this runs; any rejection path
// must clean it up again.
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		middleware.CleanupUploads(c, h.files)
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_Form(c, &req) {
		middleware.CleanupUploads(c, h.files)
		return
	}

	db := h.GetDB(c)
	coverLetter := middleware.UploadedFile(c, "coverLetter")

	application, err := h.applicationService.Create(db, userID, c.Param("id"), &req, coverLetter)
	if err != nil {
		middleware.CleanupUploads(c, h.files)
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusCreated, "Surat lamaran berhasil dikirim", application)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	page := ParsePagination(c)

	result, err := h.applicationService.ListForJob(db, userID, c.Param("id"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPaginated(c, http.StatusOK, "Semua post berhasil didapatkan.", result)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.UpdateStatus(db, userID, c.Param("id"), c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Status surat lamaran berhasil diupdate", application)
}

func (h *ApplicationHandler) Detail(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.Detail(db, userID, c.Param("id"), c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Detail Surat lamaran anda", application)
}
