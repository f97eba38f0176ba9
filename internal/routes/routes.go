package routes

import (
	"lokerhub_backend/internal/auth"
	"lokerhub_backend/internal/handlers"
	"lokerhub_backend/internal/logger"
	"lokerhub_backend/internal/middleware"
	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires the public group, the authenticated group and the
// static/doc endpoints onto the engine.
func RegisterRoutes(
	router *gin.Engine,
	h *handlers.AppHandlers,
	issuer *auth.TokenIssuer,
	files storage.Storage,
) {
	registerPublicRoutes(router, h)
	registerAuthenticatedRoutes(router, h, issuer, files)

	// Local uploads are served straight from disk.
	if local, ok := files.(*storage.LocalStorage); ok {
		router.Static("/uploads", local.BasePath())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("Routes registered")
}

func registerPublicRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.POST("/register", h.AuthHandler.Register)
	router.POST("/login", h.AuthHandler.Login)
	router.POST("/refresh-token", h.AuthHandler.RefreshToken)
	router.POST("/forgot-password", h.AuthHandler.ForgotPassword)
	router.POST("/reset-password/:token", h.AuthHandler.ResetPassword)

	router.GET("/jobs", h.JobHandler.ListPublic)
	router.GET("/jobs/:id", h.JobHandler.DetailPublic)
}

func registerAuthenticatedRoutes(
	router *gin.Engine,
	h *handlers.AppHandlers,
	issuer *auth.TokenIssuer,
	files storage.Storage,
) {
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(issuer))

	users := authed.Group("/users")
	{
		users.GET("/me", h.UserHandler.GetProfile)
		users.PATCH("/password", h.UserHandler.UpdatePassword)
		users.PATCH("/profile",
			middleware.UploadSingle(files, "curriculumVitae", storage.KindCurriculumVitae),
			h.UserHandler.UpdateProfile,
		)

		users.POST("/verification/resend", h.AuthHandler.SendVerificationToken)
		users.POST("/verification/verify", h.AuthHandler.VerifyEmail)
	}

	companyOnly := middleware.RequireRoles(models.RoleCompany)
	candidateOnly := middleware.RequireRoles(models.RoleCandidate)

	companyImages := middleware.UploadFields(files,
		middleware.UploadField{Field: "logo", Kind: storage.KindLogo},
		middleware.UploadField{Field: "thumbnail", Kind: storage.KindThumbnail},
	)

	company := authed.Group("/company")
	{
		company.POST("", companyOnly, companyImages, h.CompanyHandler.Create)
		company.GET("", companyOnly, h.CompanyHandler.Detail)
		company.PATCH("", companyOnly, companyImages, h.CompanyHandler.Update)
		company.DELETE("", companyOnly, h.CompanyHandler.Delete)

		job := company.Group("/job")
		{
			job.POST("", companyOnly, h.JobHandler.Create)
			job.GET("", companyOnly, h.JobHandler.List)
			job.GET("/:id", companyOnly, h.JobHandler.Detail)
			job.PATCH("/:id", companyOnly, h.JobHandler.Update)
			job.DELETE("/:id", companyOnly, h.JobHandler.Delete)

			job.POST("/:id/applicants",
				candidateOnly,
				middleware.UploadSingle(files, "coverLetter", storage.KindCoverLetter),
				h.ApplicationHandler.Create,
			)
			job.GET("/:id/applicants", companyOnly, h.ApplicationHandler.List)

			job.PATCH("/:id/applicants/:applicationId", companyOnly, h.ApplicationHandler.UpdateStatus)
			job.GET("/:id/applicants/:applicationId", candidateOnly, h.ApplicationHandler.Detail)
		}
	}
}
