package utils

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStorage abstracts where attachment evidence lands. The barangay server
// keeps uploads on local disk served under /uploads; swapping in object
// storage only needs another implementation of this interface.
type FileStorage interface {
	UploadFile(file multipart.File, fileName string) (string, error)
	DeleteFile(filePath string) error
	FileExists(filePath string) (bool, error)
	PublicURL(fileName string) string
}

type LocalFileStorage struct {
	uploadPath string
	baseURL    string
}

func NewLocalFileStorage(uploadPath, baseURL string) *LocalFileStorage {
	return &LocalFileStorage{uploadPath: uploadPath, baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateAttachmentName builds a unique storage name that keeps the original
// extension: {folder}/{unix-millis}-{random}.{ext}
func GenerateAttachmentName(folder, originalName string) string {
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%d-%06d.%s", folder, time.Now().UnixMilli(), rand.Intn(1_000_000), ext)
}

// UploadFile stores a multipart upload and returns the relative storage path.
func (s *LocalFileStorage) UploadFile(file multipart.File, fileName string) (string, error) {
	filePath := filepath.Join(s.uploadPath, fileName)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		// Clean up on error
		os.Remove(filePath)
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}

	return fileName, nil
}

// DeleteFile removes a stored file; a missing file is not an error.
func (s *LocalFileStorage) DeleteFile(filePath string) error {
	fullPath := filepath.Join(s.uploadPath, filePath)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalFileStorage) FileExists(filePath string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.uploadPath, filePath))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file existence: %w", err)
	}
	return true, nil
}

// PublicURL maps a storage path to the URL residents and staff can open.
func (s *LocalFileStorage) PublicURL(fileName string) string {
	return fmt.Sprintf("%s/uploads/%s", s.baseURL, fileName)
}
