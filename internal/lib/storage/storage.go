// Package storage uploads user files to blob storage and returns their
// public URLs.
//
// Two providers are supported: Azure Blob Storage and any S3-compatible
// object store (AWS S3, DigitalOcean Spaces, MinIO).
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/deppfellow/recipebox/internal/config"
)

// DefaultContentType is used when the extension is unknown.
const DefaultContentType = "application/octet-stream"

// Object is one file to upload. Size may be -1 when unknown.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store uploads objects, overwriting any existing object with the same key.
type Store interface {
	Upload(ctx context.Context, obj Object) (string, error)
	Provider() string
}

// New builds the Store selected by cfg.Provider.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Provider {
	case config.StorageProviderAzure:
		store, err = NewAzureStore(cfg.Azure)
	case config.StorageProviderS3:
		store, err = NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return store, nil
}

// NewKey returns a random object key that keeps the lower-cased extension
// of filename, e.g. "Me.JPG" -> "3f0c...e1.jpg".
func NewKey(filename string) string {
	return uuid.NewString() + extension(filename)
}

// ContentTypeFor infers a MIME type from the filename extension.
func ContentTypeFor(filename string) string {
	if ext := extension(filename); ext != "" {
		if contentType := mime.TypeByExtension(ext); contentType != "" {
			return contentType
		}
	}
	return DefaultContentType
}

// extension is the lower-cased final extension. Dotfiles such as ".env"
// have none.
func extension(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.ToLower(ext)
}
