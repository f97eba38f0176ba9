package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateManager renders the builtin email bodies.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}

	sources := map[string]string{
		"verification":   verificationTemplate,
		"welcome":        welcomeTemplate,
		"password_reset": passwordResetTemplate,
		"reset_success":  resetSuccessTemplate,
	}

	for name, src := range sources {
		tpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

const verificationTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Verify your email</h2>
  <p>Masukkan kode berikut untuk memverifikasi alamat email anda:</p>
  <p style="font-size: 32px; letter-spacing: 8px; font-weight: bold;">{{.Code}}</p>
  <p>Kode ini berlaku selama 24 jam.</p>
</div>`

const welcomeTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Selamat datang, {{.UserName}}!</h2>
  <p>Email anda sudah diverifikasi. Selamat mencari atau memposting pekerjaan.</p>
</div>`

const passwordResetTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Reset password</h2>
  <p>Klik tautan berikut untuk mengatur ulang password anda:</p>
  <p><a href="{{.ActionURL}}">{{.ActionURL}}</a></p>
  <p>Tautan ini berlaku selama 1 jam. Abaikan email ini jika anda tidak memintanya.</p>
</div>`

const resetSuccessTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Password berhasil diubah</h2>
  <p>Password akun anda baru saja diganti. Hubungi kami jika ini bukan anda.</p>
</div>`
