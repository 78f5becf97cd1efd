package utils

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDir is where receipt and ID-card images land. Overridable via
// UPLOAD_DIR at startup.
var UploadDir = "uploads"

var ErrBadPath = errors.New("path escapes the upload directory")

// SaveUpload stores a multipart file under UploadDir/<subdir> with a UUID
// name and returns the relative path ("receipts/<uuid>.png"). A missing
// file field is not an error; it returns "".
func SaveUpload(c *gin.Context, field string, subdir string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil // field absent, attachment is optional
	}
	return SaveUploadFile(c, fh, subdir)
}

func SaveUploadFile(c *gin.Context, fh *multipart.FileHeader, subdir string) (string, error) {
	ext := filepath.Ext(fh.Filename)
	name := uuid.NewString() + ext
	rel := filepath.Join(subdir, name)

	dst := filepath.Join(UploadDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// ResolvePublicPath maps a client-supplied relative path to a file under
// UploadDir, rejecting anything that climbs out of it.
func ResolvePublicPath(rel string) (string, error) {
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return "", ErrBadPath
	}
	clean := filepath.Clean(filepath.Join(UploadDir, filepath.FromSlash(rel)))

	base, err := filepath.Abs(UploadDir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(clean)
	if err != nil {
		return "", err
	}
	if abs != base && !strings.HasPrefix(abs, base+string(os.PathSeparator)) {
		return "", ErrBadPath
	}
	return abs, nil
}
