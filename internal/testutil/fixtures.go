package testutil

import (
	"encoding/json"
	"net/http"
	"testing"

	"lokerhub_backend/internal/auth"
	"lokerhub_backend/internal/models"

	"gorm.io/gorm"
)

// CreateUser inserts a verified user with the given role directly into the
// DB, hashing the raw password on the way in.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password, roleName string) *models.User {
	t.Helper()

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		t.Fatalf("role %s not seeded: %v", roleName, err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		RoleID:     role.ID,
		Name:       name,
		Email:      email,
		Password:   hashed,
		IsVerified: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	user.Role = &role

	return user
}

// Login authenticates through the real endpoint and returns the access
// token.
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, "POST", "/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login failed for %s: status %d, body %s", email, res.StatusCode, body)
	}

	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}
	if parsed.AccessToken == "" {
		t.Fatalf("login response carried no access token: %s", body)
	}

	return parsed.AccessToken
}

// CreateAndLoginCandidate creates a verified candidate and logs them in.
func (ts *TestServer) CreateAndLoginCandidate(t *testing.T, email string) (string, *models.User) {
	t.Helper()
	user := CreateUser(t, ts.DB, "Test Candidate", email, "rahasia123", models.RoleCandidate)
	return ts.Login(t, email, "rahasia123"), user
}

// CreateAndLoginCompanyUser creates a verified company-role user and logs
// them in. The company profile itself is not created.
func (ts *TestServer) CreateAndLoginCompanyUser(t *testing.T, email string) (string, *models.User) {
	t.Helper()
	user := CreateUser(t, ts.DB, "Test Company Owner", email, "rahasia123", models.RoleCompany)
	return ts.Login(t, email, "rahasia123"), user
}

// CreateCompany inserts a company row for the user.
func CreateCompany(t *testing.T, db *gorm.DB, userID, name string) *models.Company {
	t.Helper()

	company := &models.Company{
		UserID:       userID,
		Name:         name,
		Website:      "https://example.com",
		Description:  "A company used in tests",
		LogoUrl:      "logo-test.png",
		ThumbnailUrl: "thumbnail-test.png",
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return company
}

// CreateJob inserts a job row for the company.
func CreateJob(t *testing.T, db *gorm.DB, companyID, title string, status models.JobStatus) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyID:   companyID,
		Title:       title,
		Description: "A job used in tests",
		Location:    "Jakarta",
		Status:      status,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create test job: %v", err)
	}
	return job
}

// PNGFile is a minimal image upload accepted by the mime allow-list.
func PNGFile(field string) MultipartFile {
	return MultipartFile{
		Field:       field,
		Filename:    field + ".png",
		ContentType: "image/png",
		Content:     []byte("\x89PNG\r\n\x1a\nfake"),
	}
}

// PDFFile is a minimal document upload accepted by the mime allow-list.
func PDFFile(field string) MultipartFile {
	return MultipartFile{
		Field:       field,
		Filename:    field + ".pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4 fake"),
	}
}
