package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lokerhub_backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	// Preflight short-circuits with 204.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("OPTIONS", "/ping", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	issuer := auth.NewTokenIssuer("access", "refresh", time.Minute, time.Hour)

	router := gin.New()
	router.Use(AuthMiddleware(issuer))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})

	// Missing header.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token passes and exposes the user ID.
	token, err := issuer.IssueAccessToken("user-42", "candidate")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestRequireRoles(t *testing.T) {
	issuer := auth.NewTokenIssuer("access", "refresh", time.Minute, time.Hour)

	router := gin.New()
	router.Use(AuthMiddleware(issuer))
	router.GET("/company-only", RequireRoles("company"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	candidateToken, err := issuer.IssueAccessToken("user-1", "candidate")
	require.NoError(t, err)
	companyToken, err := issuer.IssueAccessToken("user-2", "company")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/company-only", nil)
	req.Header.Set("Authorization", "Bearer "+candidateToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Akses ditolak. Role tidak diizinkan.")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/company-only", nil)
	req.Header.Set("Authorization", "Bearer "+companyToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
