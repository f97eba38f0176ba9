package repositories_test

import (
	"testing"

	"lokerhub_backend/internal/models"
	"lokerhub_backend/internal/repositories"
	"lokerhub_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCompanyWithJobs(t *testing.T, db *gorm.DB) (*models.Company, []*models.Job) {
	t.Helper()
	owner := testutil.CreateUser(t, db, "Owner", "owner@repo.test", "rahasia123", models.RoleCompany)
	company := testutil.CreateCompany(t, db, owner.ID, "PT Repo")

	jobs := []*models.Job{
		testutil.CreateJob(t, db, company.ID, "Backend Engineer", models.JobStatusOpen),
		testutil.CreateJob(t, db, company.ID, "Frontend Engineer", models.JobStatusOpen),
		testutil.CreateJob(t, db, company.ID, "Data Engineer", models.JobStatusClosed),
	}
	return company, jobs
}

func TestListPublicFiltersAndJoins(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repositories.NewJobRepository()

	seedCompanyWithJobs(t, db)

	// Only open jobs; the company name comes from the join.
	rows, total, err := repo.ListPublic(db, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "open", row.Status)
		assert.Equal(t, "PT Repo", row.CompanyName)
	}

	// Title match.
	rows, total, err = repo.ListPublic(db, "Backend", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Backend Engineer", rows[0].Title)

	// Closed jobs never match even by exact title.
	_, total, err = repo.ListPublic(db, "Data Engineer", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestListPublicMatchesLocation(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repositories.NewJobRepository()

	owner := testutil.CreateUser(t, db, "Owner", "loc@repo.test", "rahasia123", models.RoleCompany)
	company := testutil.CreateCompany(t, db, owner.ID, "PT Lokasi")

	job := &models.Job{
		CompanyID:   company.ID,
		Title:       "Kasir",
		Description: "Melayani pelanggan",
		Location:    "Surabaya Timur",
		Status:      models.JobStatusOpen,
	}
	require.NoError(t, db.Create(job).Error)

	_, total, err := repo.ListPublic(db, "Surabaya", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestListByCompanyCountsAndPages(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repositories.NewJobRepository()

	company, _ := seedCompanyWithJobs(t, db)

	rows, total, err := repo.ListByCompany(db, company.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rows, 2)

	rows, _, err = repo.ListByCompany(db, company.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDeleteJobRemovesApplications(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repositories.NewJobRepository()

	_, jobs := seedCompanyWithJobs(t, db)
	job := jobs[0]

	candidate := testutil.CreateUser(t, db, "Pelamar", "pelamar@repo.test", "rahasia123", models.RoleCandidate)
	require.NoError(t, db.Create(&models.Application{
		UserID:         candidate.ID,
		JobID:          job.ID,
		Status:         models.ApplicationStatusPending,
		CoverLetterUrl: "surat.pdf",
	}).Error)

	require.NoError(t, repo.Delete(db, job))

	var applications int64
	db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&applications)
	assert.Zero(t, applications)
}

func TestDuplicateApplicationRejected(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repositories.NewApplicationRepository()

	_, jobs := seedCompanyWithJobs(t, db)
	candidate := testutil.CreateUser(t, db, "Pelamar", "dup@repo.test", "rahasia123", models.RoleCandidate)

	first := &models.Application{
		UserID:         candidate.ID,
		JobID:          jobs[0].ID,
		Status:         models.ApplicationStatusPending,
		CoverLetterUrl: "surat-1.pdf",
	}
	require.NoError(t, repo.Create(db, first))

	second := &models.Application{
		UserID:         candidate.ID,
		JobID:          jobs[0].ID,
		Status:         models.ApplicationStatusPending,
		CoverLetterUrl: "surat-2.pdf",
	}
	err := repo.Create(db, second)
	assert.ErrorIs(t, err, repositories.ErrDuplicateApplication)

	// A different job is fine.
	third := &models.Application{
		UserID:         candidate.ID,
		JobID:          jobs[1].ID,
		Status:         models.ApplicationStatusPending,
		CoverLetterUrl: "surat-3.pdf",
	}
	assert.NoError(t, repo.Create(db, third))
}
