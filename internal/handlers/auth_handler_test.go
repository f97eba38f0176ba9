package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginProfileFlow(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/register", "", map[string]string{
		"email":           "budi@example.com",
		"name":            "Budi Santoso",
		"password":        "rahasia123",
		"confirmPassword": "rahasia123",
		"roleName":        "candidate",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "Registrasi Berhasil")
	assert.NotContains(t, body, "rahasia123", "password must never leak")

	token := ts.Login(t, "budi@example.com", "rahasia123")

	res, body = ts.SendRequest(t, "GET", "/users/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "budi@example.com")
	assert.Contains(t, body, "Budi Santoso")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	testutil.CreateUser(t, ts.DB, "First", "dup@example.com", "rahasia123", models.RoleCandidate)

	res, body := ts.SendRequest(t, "POST", "/register", "", map[string]string{
		"email":           "dup@example.com",
		"name":            "Second User",
		"password":        "rahasia123",
		"confirmPassword": "rahasia123",
		"roleName":        "candidate",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "User sudah ada")
}

func TestRegisterPasswordMismatch(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/register", "", map[string]string{
		"email":           "mismatch@example.com",
		"name":            "Mismatch",
		"password":        "rahasia123",
		"confirmPassword": "berbeda123",
		"roleName":        "candidate",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Password dan Konfirmasi Password tidak sama")
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/register", "", map[string]string{
		"email":           "not-an-email",
		"name":            "X",
		"password":        "123",
		"confirmPassword": "123",
		"roleName":        "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "roleName")
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	testutil.CreateUser(t, ts.DB, "User", "login@example.com", "rahasia123", models.RoleCandidate)

	res, body := ts.SendRequest(t, "POST", "/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "salah123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Email dan Password salah")

	// Unknown email answers with the same message.
	res, body = ts.SendRequest(t, "POST", "/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Email dan Password salah")
}

func TestLoginStampsLastLogin(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	user := testutil.CreateUser(t, ts.DB, "User", "stamp@example.com", "rahasia123", models.RoleCandidate)
	require.Nil(t, user.LastLogin)

	ts.Login(t, "stamp@example.com", "rahasia123")

	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.NotNil(t, reloaded.LastLogin)
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	testutil.CreateUser(t, ts.DB, "User", "refresh@example.com", "rahasia123", models.RoleCandidate)

	res, body := ts.SendRequest(t, "POST", "/login", "", map[string]string{
		"email":    "refresh@example.com",
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))

	// The refresh token rides in the Authorization header.
	res, body = ts.SendRequest(t, "POST", "/refresh-token", login.RefreshToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Token refreshed")
	assert.Contains(t, body, "accessToken")

	// An access token is signed with a different secret and must not pass.
	res, _ = ts.SendRequest(t, "POST", "/refresh-token", login.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// No token at all.
	res, body = ts.SendRequest(t, "POST", "/refresh-token", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Refresh token required")
}

func TestEmailVerificationFlow(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	// Register through the API so the account starts unverified.
	res, _ := ts.SendRequest(t, "POST", "/register", "", map[string]string{
		"email":           "verify@example.com",
		"name":            "Verify Me",
		"password":        "rahasia123",
		"confirmPassword": "rahasia123",
		"roleName":        "candidate",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	token := ts.Login(t, "verify@example.com", "rahasia123")

	res, body := ts.SendRequest(t, "POST", "/users/verification/resend", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Send verification token successfully")

	// The issued code is persisted on the user row.
	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "verify@example.com").Error)
	require.NotNil(t, user.VerificationToken)
	code := *user.VerificationToken

	res, body = ts.SendRequest(t, "POST", "/users/verification/verify", token, map[string]string{
		"code": code,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Email verified successfully")

	// The code is single-use.
	res, body = ts.SendRequest(t, "POST", "/users/verification/verify", token, map[string]string{
		"code": code,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid or expired verification code")

	// Once verified, another resend is refused.
	res, body = ts.SendRequest(t, "POST", "/users/verification/resend", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Email sudah diverifikasi.")
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, user := ts.CreateAndLoginCandidate(t, "expiredcode@example.com")
	require.NoError(t, ts.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("is_verified", false).Error)

	// Plant the correct code with an expiry already in the past.
	code := "123456"
	expiredAt := time.Now().Add(-time.Minute)
	require.NoError(t, ts.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"verification_token":            code,
			"verification_token_expires_at": expiredAt,
		}).Error)

	res, body := ts.SendRequest(t, "POST", "/users/verification/verify", token, map[string]string{
		"code": code,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid or expired verification code")

	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.False(t, reloaded.IsVerified)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	user := testutil.CreateUser(t, ts.DB, "User", "expiredreset@example.com", "rahasia123", models.RoleCandidate)

	// Plant the correct token with an expiry already in the past.
	resetToken := "00112233445566778899aabbccddeeff00112233"
	expiredAt := time.Now().Add(-time.Minute)
	require.NoError(t, ts.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"reset_password_token":      resetToken,
			"reset_password_expires_at": expiredAt,
		}).Error)

	res, body := ts.SendRequest(t, "POST", "/reset-password/"+resetToken, "", map[string]string{
		"password": "barubanget123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid or expired reset token")

	// The old password still works.
	ts.Login(t, "expiredreset@example.com", "rahasia123")
}

func TestVerifyEmailWrongCode(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, _ := ts.CreateAndLoginCandidate(t, "wrongcode@example.com")

	res, body := ts.SendRequest(t, "POST", "/users/verification/verify", token, map[string]string{
		"code": "000000",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid or expired verification code")
}

func TestForgotAndResetPassword(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	testutil.CreateUser(t, ts.DB, "User", "reset@example.com", "rahasia123", models.RoleCandidate)

	res, body := ts.SendRequest(t, "POST", "/forgot-password", "", map[string]string{
		"email": "reset@example.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Password reset link sent to your email")

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "reset@example.com").Error)
	require.NotNil(t, user.ResetPasswordToken)
	resetToken := *user.ResetPasswordToken

	res, body = ts.SendRequest(t, "POST", "/reset-password/"+resetToken, "", map[string]string{
		"password": "barubanget123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Password reset success")

	// Old password no longer works, new one does.
	res, _ = ts.SendRequest(t, "POST", "/login", "", map[string]string{
		"email":    "reset@example.com",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	ts.Login(t, "reset@example.com", "barubanget123")

	// The token is single-use.
	res, body = ts.SendRequest(t, "POST", "/reset-password/"+resetToken, "", map[string]string{
		"password": "lagilagi123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid or expired reset token")
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/forgot-password", "", map[string]string{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "User not found")
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/users/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
