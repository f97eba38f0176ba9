package storage

import (
	"context"
	"fmt"
	"io"
)

// Upload kinds map to subdirectories under the storage root. The database
// stores bare filenames; the public URL is derived, never persisted.
const (
	KindLogo            = "logo"
	KindThumbnail       = "thumbnail"
	KindCoverLetter     = "coverLetter"
	KindCurriculumVitae = "curriculumVitae"
)

// Storage is the file persistence abstraction used by upload flows.
type Storage interface {
	// Save stores a file under kind/filename.
	Save(ctx context.Context, kind, filename string, reader io.Reader) error

	// Delete removes kind/filename; missing files are not an error.
	Delete(ctx context.Context, kind, filename string) error

	// Exists checks whether kind/filename is present.
	Exists(ctx context.Context, kind, filename string) (bool, error)

	// PublicURL returns the externally visible URL for kind/filename.
	PublicURL(kind, filename string) string
}

// Config holds storage configuration.
type Config struct {
	Type     string // local
	BasePath string // storage root on disk
	BaseURL  string // public URL prefix, e.g. http://localhost:4000/uploads
}

// NewStorage builds a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
