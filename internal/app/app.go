package app

import (
	"fmt"
	"time"

	"lokerhub_backend/database"
	"lokerhub_backend/internal/auth"
	"lokerhub_backend/internal/config"
	"lokerhub_backend/internal/email"
	"lokerhub_backend/internal/handlers"
	"lokerhub_backend/internal/logger"
	"lokerhub_backend/internal/middleware"
	"lokerhub_backend/internal/repositories"
	"lokerhub_backend/internal/routes"
	"lokerhub_backend/internal/services"
	"lokerhub_backend/internal/storage"
	"lokerhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "lokerhub_backend/docs"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedRoles(gormDB); err != nil {
		logger.Fatal("Role seeding failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

// SetupRouter builds the fully wired engine. Tests call it directly with
// their own DB handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokenIssuer := auth.NewTokenIssuer(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessTTL)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTL)*time.Hour,
	)

	serviceContainer := initializeServices(cfg, tokenIssuer, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, tokenIssuer, storageInstance)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokenIssuer *auth.TokenIssuer, storageInstance storage.Storage) *services.ServiceContainer {
	emailSender := newEmailSender(cfg)

	userRepo := repositories.NewUserRepository()
	roleRepo := repositories.NewRoleRepository()
	companyRepo := repositories.NewCompanyRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, roleRepo, tokenIssuer, emailSender, cfg.ClientURL),
		UserService:        services.NewUserService(userRepo, storageInstance),
		CompanyService:     services.NewCompanyService(companyRepo, storageInstance),
		JobService:         services.NewJobService(jobRepo, companyRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, companyRepo, userRepo, storageInstance),
		EmailSender:        emailSender,
	}
}

// newEmailSender falls back to the mock when SMTP is not configured, so a
// bare dev checkout can still register and verify accounts.
func newEmailSender(cfg *config.Config) email.Sender {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, using mock email sender")
		return email.NewMockSender()
	}

	sender, err := email.NewSMTPSender(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize SMTP sender", "error", err)
	}
	return sender
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService, storageInstance),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, container.CompanyService, storageInstance),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService, storageInstance),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
