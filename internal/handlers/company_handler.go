package handlers

import (
	"net/http"

	"lokerhub_backend/internal/middleware"
	"lokerhub_backend/internal/services"
	"lokerhub_backend/internal/services/dto"
	"lokerhub_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
	files          storage.Storage
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService, files storage.Storage) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
		files:          files,
	}
}

// Create registers the acting user's company. logo and thumbnail are both
// required multipart files; on any failure the stored files are removed.
func (h *CompanyHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		middleware.CleanupUploads(c, h.files)
		return
	}

	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_Form(c, &req) {
		middleware.CleanupUploads(c, h.files)
		return
	}

	db := h.GetDB(c)
	logo := middleware.UploadedFile(c, "logo")
	thumbnail := middleware.UploadedFile(c, "thumbnail")

	company, err := h.companyService.Create(db, userID, &req, logo, thumbnail)
	if err != nil {
		middleware.CleanupUploads(c, h.files)
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusCreated, "company berhasil ditambahkan", company)
}

func (h *CompanyHandler) Detail(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	company, err := h.companyService.Detail(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Detail perusahaan berhasil ditampilkan", company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		middleware.CleanupUploads(c, h.files)
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_Form(c, &req) {
		middleware.CleanupUploads(c, h.files)
		return
	}

	db := h.GetDB(c)
	logo := middleware.UploadedFile(c, "logo")
	thumbnail := middleware.UploadedFile(c, "thumbnail")

	company, err := h.companyService.Update(db, userID, &req, logo, thumbnail)
	if err != nil {
		middleware.CleanupUploads(c, h.files)
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Company berhasil diperbarui", company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	company, err := h.companyService.Delete(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Perusahaan berhasil dihapus", company)
}
