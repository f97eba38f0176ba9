package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVerification(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render("verification", TemplateData{Code: "123456"})
	require.NoError(t, err)
	assert.Contains(t, body, "123456")
}

func TestRenderPasswordResetEscapesURL(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render("password_reset", TemplateData{
		ActionURL: "http://localhost:3000/reset-password/abcdef",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "reset-password/abcdef")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("nope", TemplateData{})
	assert.Error(t, err)
}

func TestMockSenderRecordsCalls(t *testing.T) {
	m := NewMockSender()

	require.NoError(t, m.SendVerification("a@b.c", "111111"))
	require.NoError(t, m.SendVerification("a@b.c", "222222"))
	require.NoError(t, m.SendPasswordReset("a@b.c", "http://reset"))

	last := m.Last("verification")
	require.NotNil(t, last)
	assert.Equal(t, "222222", last.Code)

	reset := m.Last("password_reset")
	require.NotNil(t, reset)
	assert.Equal(t, "http://reset", reset.URL)

	assert.Nil(t, m.Last("welcome"))
}
