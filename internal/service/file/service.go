package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

// FileService persists the base64 camera captures the clients send:
// per-event attendance snapshots and the enrollment photo.
type FileService interface {
	UploadAttendanceSnapshot(ctx context.Context, employeeID string, date time.Time, eventType string, dataBase64 string) (string, error)
	UploadEnrollmentPhoto(ctx context.Context, employeeID string, dataBase64 string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// decodeDataURL accepts either a bare base64 payload or a full data URL
// ("data:image/png;base64,...") and returns the raw bytes plus extension.
func decodeDataURL(data string) ([]byte, string, string, error) {
	contentType := "image/jpeg"
	ext := ".jpg"

	if strings.HasPrefix(data, "data:") {
		parts := strings.SplitN(data, ",", 2)
		if len(parts) != 2 {
			return nil, "", "", fmt.Errorf("malformed data URL")
		}
		meta := parts[0]
		data = parts[1]

		if strings.Contains(meta, "image/png") {
			contentType = "image/png"
			ext = ".png"
		}
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid base64 image data: %w", err)
	}

	return raw, contentType, ext, nil
}

// UploadAttendanceSnapshot stores the capture taken at check-in/check-out
// and returns its public URL.
func (s *fileServiceImpl) UploadAttendanceSnapshot(ctx context.Context, employeeID string, date time.Time, eventType string, dataBase64 string) (string, error) {
	raw, contentType, ext, err := decodeDataURL(dataBase64)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s-%s-%s%s", date.Format("2006-01-02"), eventType, uuid.New().String(), ext)
	path := filepath.Join("attendance", employeeID, filename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(raw), path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance snapshot: %w", err)
	}

	return s.storage.GetURL(ctx, uploadedPath)
}

// UploadEnrollmentPhoto stores the reference photo captured during biometric
// enrollment and returns its public URL.
func (s *fileServiceImpl) UploadEnrollmentPhoto(ctx context.Context, employeeID string, dataBase64 string) (string, error) {
	raw, contentType, ext, err := decodeDataURL(dataBase64)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("enrollment-%s%s", uuid.New().String(), ext)
	path := filepath.Join("faces", employeeID, filename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(raw), path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload enrollment photo: %w", err)
	}

	return s.storage.GetURL(ctx, uploadedPath)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path)
}
