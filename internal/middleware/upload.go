package middleware

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"lokerhub_backend/internal/logger"
	"lokerhub_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Multipart uploads are stored to disk BEFORE the handler runs, mirroring
// the usual disk-backed upload middleware. Handlers that reject the request
// afterwards must call CleanupUploads so no orphaned file is left behind.

const uploadedFilesKey = "uploadedFiles"

var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/jpg":       true,
	"application/pdf": true,
}

type uploadedFile struct {
	Kind     string
	Filename string
}

// UploadField describes one expected multipart file field.
type UploadField struct {
	Field string
	Kind  string
}

// UploadSingle stores the optional file from the given form field.
func UploadSingle(st storage.Storage, field, kind string) gin.HandlerFunc {
	return UploadFields(st, UploadField{Field: field, Kind: kind})
}

// UploadFields stores every present file among the given form fields.
// Absent fields are not an error; required-file rules belong to handlers.
func UploadFields(st storage.Storage, fields ...UploadField) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			// Not a multipart request or no files attached
			c.Next()
			return
		}

		var saved []uploadedFile
		for _, f := range fields {
			headers := form.File[f.Field]
			if len(headers) == 0 {
				continue
			}
			header := headers[0]

			if !allowedMimeTypes[header.Header.Get("Content-Type")] {
				rollbackUploads(c, st, saved)
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Hanya file gambar dan PDF yang diperbolehkan!",
				})
				return
			}

			filename := generateFilename(f.Field, header.Filename)

			src, err := header.Open()
			if err != nil {
				rollbackUploads(c, st, saved)
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Gagal membaca file yang diunggah",
				})
				return
			}

			err = st.Save(c.Request.Context(), f.Kind, filename, src)
			src.Close()
			if err != nil {
				logger.CtxWithError(c.Request.Context(), "Failed to store upload", err, "field", f.Field)
				rollbackUploads(c, st, saved)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Gagal menyimpan file",
				})
				return
			}

			saved = append(saved, uploadedFile{Kind: f.Kind, Filename: filename})
			c.Set(uploadKey(f.Field), filename)
		}

		c.Set(uploadedFilesKey, saved)
		c.Next()
	}
}

// UploadedFile returns the stored filename for a form field, if any.
func UploadedFile(c *gin.Context, field string) string {
	val, ok := c.Get(uploadKey(field))
	if !ok {
		return ""
	}
	name, _ := val.(string)
	return name
}

// CleanupUploads deletes every file stored for this request. Called by
// handlers when a precondition fails after the upload happened.
func CleanupUploads(c *gin.Context, st storage.Storage) {
	val, ok := c.Get(uploadedFilesKey)
	if !ok {
		return
	}
	saved, _ := val.([]uploadedFile)
	rollbackUploads(c, st, saved)
}

func rollbackUploads(c *gin.Context, st storage.Storage, saved []uploadedFile) {
	for _, f := range saved {
		if err := st.Delete(c.Request.Context(), f.Kind, f.Filename); err != nil {
			logger.CtxWithError(c.Request.Context(), "Failed to clean up upload", err, "file", f.Filename)
		}
	}
}

func uploadKey(field string) string {
	return "upload:" + field
}

func generateFilename(field, original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1e9), ext)
}
