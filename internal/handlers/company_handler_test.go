package handlers_test

import (
	"net/http"
	"testing"

	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/storage"
	"lokerhub_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func companyForm() map[string]string {
	return map[string]string{
		"name":        "PT Maju Jaya",
		"website":     "https://majujaya.co.id",
		"description": "Perusahaan teknologi yang bergerak di bidang logistik.",
	}
}

func companyImages() []testutil.MultipartFile {
	return []testutil.MultipartFile{
		testutil.PNGFile("logo"),
		testutil.PNGFile("thumbnail"),
	}
}

func TestCompanyLifecycle(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, _ := ts.CreateAndLoginCompanyUser(t, "owner@example.com")

	res, body := ts.SendMultipart(t, "POST", "/company", token, companyForm(), companyImages())
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "company berhasil ditambahkan")
	assert.Contains(t, body, "PT Maju Jaya")

	assert.Len(t, uploadedFiles(t, ts, storage.KindLogo), 1)
	assert.Len(t, uploadedFiles(t, ts, storage.KindThumbnail), 1)

	res, body = ts.SendRequest(t, "GET", "/company", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Detail perusahaan berhasil ditampilkan")
	assert.Contains(t, body, "/uploads/logo/")
	assert.Contains(t, body, "/uploads/thumbnail/")

	res, body = ts.SendMultipart(t, "PATCH", "/company", token,
		map[string]string{"name": "PT Maju Jaya Abadi"}, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Company berhasil diperbarui")
	assert.Contains(t, body, "PT Maju Jaya Abadi")

	res, body = ts.SendRequest(t, "DELETE", "/company", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Perusahaan berhasil dihapus")

	// Files are gone from disk with the row.
	assert.Empty(t, uploadedFiles(t, ts, storage.KindLogo))
	assert.Empty(t, uploadedFiles(t, ts, storage.KindThumbnail))

	res, body = ts.SendRequest(t, "GET", "/company", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Perusahaan belum dibuat")
}

func TestCreateCompanyRequiresBothImages(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, _ := ts.CreateAndLoginCompanyUser(t, "noimages@example.com")

	res, body := ts.SendMultipart(t, "POST", "/company", token, companyForm(),
		[]testutil.MultipartFile{testutil.PNGFile("logo")})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Gambar wajib diunggah.")

	// The half-uploaded logo is cleaned up again.
	assert.Empty(t, uploadedFiles(t, ts, storage.KindLogo))
}

func TestCreateCompanyTwiceBlocked(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, user := ts.CreateAndLoginCompanyUser(t, "twice@example.com")
	testutil.CreateCompany(t, ts.DB, user.ID, "Perusahaan Pertama")

	res, body := ts.SendMultipart(t, "POST", "/company", token, companyForm(), companyImages())
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Anda sudah mendaftarkan perusahaan")

	// The uploads from the rejected request do not linger.
	assert.Empty(t, uploadedFiles(t, ts, storage.KindLogo))
	assert.Empty(t, uploadedFiles(t, ts, storage.KindThumbnail))
}

func TestCompanyRoutesRequireCompanyRole(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, _ := ts.CreateAndLoginCandidate(t, "candidate@example.com")

	res, body := ts.SendRequest(t, "GET", "/company", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Akses ditolak. Role tidak diizinkan.")

	res, _ = ts.SendMultipart(t, "POST", "/company", token, companyForm(), companyImages())
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestDeleteCompanyCascades(t *testing.T) {
	t.Parallel()
	ts := testutil.NewTestServer(t)

	token, user := ts.CreateAndLoginCompanyUser(t, "cascade@example.com")
	company := testutil.CreateCompany(t, ts.DB, user.ID, "Perusahaan Cascade")
	job := testutil.CreateJob(t, ts.DB, company.ID, "Backend Engineer", models.JobStatusOpen)

	candidate := testutil.CreateUser(t, ts.DB, "Pelamar", "pelamar@example.com", "rahasia123", models.RoleCandidate)
	application := &models.Application{
		UserID:         candidate.ID,
		JobID:          job.ID,
		Status:         models.ApplicationStatusPending,
		CoverLetterUrl: "surat.pdf",
	}
	require.NoError(t, ts.DB.Create(application).Error)

	res, _ := ts.SendRequest(t, "DELETE", "/company", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var jobs, applications int64
	ts.DB.Model(&models.Job{}).Where("company_id = ?", company.ID).Count(&jobs)
	ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&applications)
	assert.Zero(t, jobs)
	assert.Zero(t, applications)
}
