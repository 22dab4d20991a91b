package util

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
)

const (
	MaxResumeSize = 5 * 1024 * 1024
	MaxImageSize  = 2 * 1024 * 1024
)

var (
	resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
	imageExtensions  = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}
)

// SaveResume validates and stores an uploaded resume, returning the stored filename.
func SaveResume(c *fiber.Ctx, file *multipart.FileHeader, uploadDir string) (string, error) {
	return saveUpload(c, file, filepath.Join(uploadDir, "resumes"), resumeExtensions, MaxResumeSize)
}

// SaveImage validates and stores an uploaded logo or avatar.
func SaveImage(c *fiber.Ctx, file *multipart.FileHeader, uploadDir, kind string) (string, error) {
	return saveUpload(c, file, filepath.Join(uploadDir, kind), imageExtensions, MaxImageSize)
}

func saveUpload(c *fiber.Ctx, file *multipart.FileHeader, dir string, allowed map[string]bool, maxSize int64) (string, error) {
	if file.Size > maxSize {
		return "", apperror.NewValidationError(
			fmt.Sprintf("file is too large (max %dMB)", maxSize/(1024*1024)),
			map[string]string{"file": "file exceeds the size limit"})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		return "", apperror.NewValidationError(
			fmt.Sprintf("unsupported file type %s", ext),
			map[string]string{"file": "file type is not allowed"})
	}
	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("cannot save uploaded file: %w", err)
	}
	return name, nil
}
