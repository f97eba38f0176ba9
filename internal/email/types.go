package email

import "fmt"

// Sender delivers the four notification emails of the platform. Delivery
// failures are logged by callers, never surfaced to the client.
type Sender interface {
	SendVerification(to, code string) error
	SendWelcome(to, name string) error
	SendPasswordReset(to, resetURL string) error
	SendResetSuccess(to string) error
}

// Config holds SMTP settings.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// TemplateData is the payload rendered into the builtin templates.
type TemplateData struct {
	UserName  string
	Code      string
	ActionURL string
}
