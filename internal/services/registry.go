package services

import "lokerhub_backend/internal/email"

// ServiceContainer bundles every service for wiring in internal/app.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	CompanyService     CompanyService
	JobService         JobService
	ApplicationService ApplicationService
	EmailSender        email.Sender
}
