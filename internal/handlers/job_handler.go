package handlers

import (
	"net/http"

	"lokerhub_backend/internal/services"
	"lokerhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusCreated, "Pekerjaan berhasil ditambahkan", job)
}

func (h *JobHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	page := ParsePagination(c)

	result, err := h.jobService.ListForCompany(db, userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPaginated(c, http.StatusOK, "Semua job berhasil didapatkan.", result)
}

func (h *JobHandler) Detail(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Detail(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Detail pekerjaan berhasil didapatkan", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Pekerjaan berhasil diupdate", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Delete(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Pekerjaan berhasil dihapus", job)
}

// ListPublic godoc
// @Summary      List open jobs
// @Tags         jobs
// @Produce      json
// @Param        search  query string false "Match against title or location"
// @Param        page    query int    false "Page number"
// @Param        perPage query int    false "Page size"
// @Success      200 {object} map[string]interface{}
// @Router       /jobs [get]
func (h *JobHandler) ListPublic(c *gin.Context) {
	db := h.GetDB(c)
	page := ParsePagination(c)
	search := c.Query("search")

	result, err := h.jobService.ListPublic(db, search, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPaginated(c, http.StatusOK, "Semua job berhasil didapatkan.", result)
}

// DetailPublic godoc
// @Summary      Get one job with its company
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) DetailPublic(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.DetailPublic(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, "Detail job berhasil didapatkan.", job)
}
