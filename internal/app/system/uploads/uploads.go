// Package uploads stores uploaded images and hands back their public paths.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Uploader writes uploaded files to the configured storage backend
// (local disk by default, S3 when configured) under collision-proof names.
type Uploader struct {
	storage storage.Store
	logger  *zap.Logger
}

// New creates a new Uploader on top of the given storage backend.
func New(store storage.Store, logger *zap.Logger) *Uploader {
	return &Uploader{
		storage: store,
		logger:  logger,
	}
}

// SaveImage stores content under a generated unique name and returns the
// public URL for the stored file (e.g. /uploads/<uuid>-<name> with local
// storage).
//
// The name is a random UUID prefixed onto the base of the original filename;
// the UUID prevents collisions and taking only the base name strips any
// directory components a client could smuggle in. No file type or size
// validation happens here beyond the multipart limits enforced upstream.
func (u *Uploader) SaveImage(ctx context.Context, content io.Reader, originalName, contentType string) (string, error) {
	name := fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(originalName))

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := u.storage.Put(ctx, name, content, opts); err != nil {
		u.logger.Error("failed to store uploaded file",
			zap.String("name", name),
			zap.Error(err),
		)
		return "", fmt.Errorf("store uploaded file: %w", err)
	}

	publicURL := u.storage.URL(name)

	u.logger.Debug("stored uploaded file",
		zap.String("name", name),
		zap.String("url", publicURL),
	)

	return publicURL, nil
}
