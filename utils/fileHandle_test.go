package utils

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lms/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename, contents string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func TestSaveAndDeleteUploadedFile(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: t.TempDir(), UploadURL: "/uploads"}

	header := uploadedFile(t, "notes.pdf", "pdf-bytes")

	path, err := SaveUploadedFile(header, "contents/documents")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "contents/documents/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	stored := filepath.Join(config.AppConfig.UploadDir, path)
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	require.NoError(t, DeleteUploadedFile(path))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is fine
	assert.NoError(t, DeleteUploadedFile(path))
	assert.NoError(t, DeleteUploadedFile(""))
}

func TestSaveUploadedFileUniqueNames(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: t.TempDir(), UploadURL: "/uploads"}

	first, err := SaveUploadedFile(uploadedFile(t, "a.mp4", "one"), "contents/videos")
	require.NoError(t, err)
	second, err := SaveUploadedFile(uploadedFile(t, "a.mp4", "two"), "contents/videos")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestContentFolder(t *testing.T) {
	assert.Equal(t, "contents/videos", ContentFolder("video"))
	assert.Equal(t, "contents/documents", ContentFolder("document"))
	assert.Equal(t, "contents/files", ContentFolder("text"))
	assert.Equal(t, "contents/files", ContentFolder("quiz"))
}

func TestGetFileURL(t *testing.T) {
	config.AppConfig = &config.Config{UploadURL: "/uploads"}

	assert.Equal(t, "", GetFileURL(""))
	assert.Equal(t, "/uploads/contents/videos/a.mp4", GetFileURL("contents/videos/a.mp4"))
}
