package handlers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/storage"
	"lokerhub_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFiles(t *testing.T, ts *testutil.TestServer, kind string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(ts.Config.Storage.BasePath, kind))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, _ := ts.CreateAndLoginCandidate(t, "pwd@example.com")

	res, body := ts.SendRequest(t, "PATCH", "/users/password", token, map[string]string{
		"oldPassword":     "rahasia123",
		"newPassword":     "barubanget123",
		"confirmPassword": "barubanget123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Update Password Berhasil")

	ts.Login(t, "pwd@example.com", "barubanget123")
}

func TestUpdatePasswordWrongOld(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, _ := ts.CreateAndLoginCandidate(t, "pwdwrong@example.com")

	res, body := ts.SendRequest(t, "PATCH", "/users/password", token, map[string]string{
		"oldPassword":     "salah123",
		"newPassword":     "barubanget123",
		"confirmPassword": "barubanget123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Password lama anda salah")
}

func TestUpdatePasswordConfirmMismatch(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, _ := ts.CreateAndLoginCandidate(t, "pwdmm@example.com")

	res, body := ts.SendRequest(t, "PATCH", "/users/password", token, map[string]string{
		"oldPassword":     "rahasia123",
		"newPassword":     "barubanget123",
		"confirmPassword": "lain123456",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Password baru dan konfirmasi password tidak sama")
}

func TestUpdateProfileWithCV(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, user := ts.CreateAndLoginCandidate(t, "cv@example.com")

	res, body := ts.SendMultipart(t, "PATCH", "/users/profile", token,
		map[string]string{"name": "Nama Baru"},
		[]testutil.MultipartFile{testutil.PDFFile("curriculumVitae")},
	)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Update Profile Berhasil")
	assert.Contains(t, body, "Nama Baru")
	assert.Contains(t, body, "/uploads/curriculumVitae/")

	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.NotEmpty(t, reloaded.CurriculumVitaeUrl)

	files := uploadedFiles(t, ts, storage.KindCurriculumVitae)
	require.Len(t, files, 1)
	firstCV := files[0]

	// Replacing the CV removes the previous file from disk.
	res, _ = ts.SendMultipart(t, "PATCH", "/users/profile", token,
		nil,
		[]testutil.MultipartFile{testutil.PDFFile("curriculumVitae")},
	)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	files = uploadedFiles(t, ts, storage.KindCurriculumVitae)
	require.Len(t, files, 1)
	assert.NotEqual(t, firstCV, files[0])
}

func TestUpdateProfileRejectsWrongMime(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, _ := ts.CreateAndLoginCandidate(t, "mime@example.com")

	res, body := ts.SendMultipart(t, "PATCH", "/users/profile", token,
		nil,
		[]testutil.MultipartFile{{
			Field:       "curriculumVitae",
			Filename:    "cv.exe",
			ContentType: "application/octet-stream",
			Content:     []byte("MZ"),
		}},
	)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Hanya file gambar dan PDF yang diperbolehkan!")

	assert.Empty(t, uploadedFiles(t, ts, storage.KindCurriculumVitae))
}

func TestUpdateProfileNameOnly(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, user := ts.CreateAndLoginCandidate(t, "nameonly@example.com")

	res, body := ts.SendMultipart(t, "PATCH", "/users/profile", token,
		map[string]string{"name": "Hanya Nama"},
		nil,
	)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Hanya Nama")

	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.Empty(t, reloaded.CurriculumVitaeUrl)
}
