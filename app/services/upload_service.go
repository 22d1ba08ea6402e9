package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/kashvi-store/pkg/storage"
)

// UploadService stores uploaded images on the configured storage disk
// (local filesystem or S3).
type UploadService struct{}

func NewUploadService() *UploadService {
	return &UploadService{}
}

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// Store saves the uploaded file under uploads/ with a random name and
// returns its public URL.
func (s *UploadService) Store(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("upload: unsupported file type %q", ext)
	}

	// Cap at 10 MB.
	if header.Size > 10<<20 {
		return "", fmt.Errorf("upload: file too large (%d bytes)", header.Size)
	}

	path := "uploads/" + uuid.NewString() + ext
	if err := storage.PutStream(path, io.LimitReader(file, 10<<20)); err != nil {
		return "", fmt.Errorf("upload: store: %w", err)
	}

	return storage.URL(path), nil
}
