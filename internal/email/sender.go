package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPSender delivers mail over SMTP via gomail.
type SMTPSender struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPSender{
		config:    config,
		templates: tm,
		dialer:    gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

func (s *SMTPSender) SendVerification(to, code string) error {
	return s.send(to, "Verify your email", "verification", TemplateData{Code: code})
}

func (s *SMTPSender) SendWelcome(to, name string) error {
	return s.send(to, "Selamat datang di LokerHub", "welcome", TemplateData{UserName: name})
}

func (s *SMTPSender) SendPasswordReset(to, resetURL string) error {
	return s.send(to, "Reset your password", "password_reset", TemplateData{ActionURL: resetURL})
}

func (s *SMTPSender) SendResetSuccess(to string) error {
	return s.send(to, "Password reset successful", "reset_success", TemplateData{})
}

func (s *SMTPSender) send(to, subject, templateName string, data TemplateData) error {
	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
