package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/palengke-dev/palengke/internal/errors"
	"github.com/palengke-dev/palengke/internal/logger"
)

type UploadService interface {
	// Upload stores the file under a freshly generated name and returns its
	// public URL.
	Upload(ctx context.Context, file io.Reader, originalName, contentType string) (string, error)
}

type ObjectStorage interface {
	Save(ctx context.Context, objectKey string, data io.Reader, size int64, contentType string) (string, error)
}

type Upload struct {
	storage      ObjectStorage
	allowedMimes map[string]bool
}

func NewUpload(storage ObjectStorage, allowedMimeTypes []string) UploadService {
	allowed := make(map[string]bool, len(allowedMimeTypes))
	for _, m := range allowedMimeTypes {
		allowed[m] = true
	}
	return &Upload{storage: storage, allowedMimes: allowed}
}

func (u *Upload) Upload(ctx context.Context, file io.Reader, originalName, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) == 0 {
		return "", errors.BadRequest("Uploaded file is empty")
	}

	contentType = resolveContentType(data, contentType)
	if len(u.allowedMimes) > 0 && !u.allowedMimes[contentType] {
		return "", errors.BadRequest(fmt.Sprintf("Unsupported file type: %s", contentType))
	}

	// The generated name is the only thing stored; the original name survives
	// solely as its extension, which avoids collisions and path injection.
	objectKey := uuid.New().String() + fileExtension(originalName)

	if width, height, ok := probeDimensions(data); ok {
		logger.Log.Debug("uploading image", "object_key", objectKey, "width", width, "height", height, "size_bytes", len(data))
	}

	return u.storage.Save(ctx, objectKey, bytes.NewReader(data), int64(len(data)), contentType)
}

// resolveContentType trusts the declared type unless it's absent or generic,
// in which case the content is sniffed.
func resolveContentType(data []byte, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(data).String()
}

// fileExtension returns the final ".xyz" segment of name, or "" when there is
// no dot. A bare trailing dot is treated as no extension, so generated names
// never end with a dangling dot.
func fileExtension(name string) string {
	ext := filepath.Ext(filepath.Base(name))
	if ext == "." {
		return ""
	}
	return ext
}

func probeDimensions(data []byte) (width, height int, ok bool) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
