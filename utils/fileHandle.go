package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"lms/config"
	courseModels "lms/models/course"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under folder inside the
// configured upload dir and returns the path relative to that dir.
func SaveUploadedFile(file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join(config.AppConfig.UploadDir, folder)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Unique filename, keep the original extension
	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(destDir, newFilename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(folder, newFilename)), nil
}

// DeleteUploadedFile removes a previously stored file. A missing file is
// not an error.
func DeleteUploadedFile(filePath string) error {
	if filePath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(config.AppConfig.UploadDir, filePath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ContentFolder maps a content type to the folder its files are stored under.
func ContentFolder(contentType string) string {
	switch contentType {
	case courseModels.ContentTypeVideo:
		return "contents/videos"
	case courseModels.ContentTypeDocument:
		return "contents/documents"
	default:
		return "contents/files"
	}
}

// GetFileURL returns the public URL for a stored file path
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return config.AppConfig.UploadURL + "/" + filePath
}
