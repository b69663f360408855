package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskPhotoStore writes submitted selfies under the uploads dir, which the
// server exposes statically. The stored path is the opaque reference kept
// on the attendance record.
type DiskPhotoStore struct {
	Dir string // e.g. "uploads/attendance"
}

func NewDiskPhotoStore(dir string) *DiskPhotoStore {
	return &DiskPhotoStore{Dir: dir}
}

func (s *DiskPhotoStore) Save(staffID string, data string) (string, error) {
	// Clients send data URLs ("data:image/jpeg;base64,...."); strip the
	// prefix, keep the raw payload.
	payload := data
	if idx := strings.Index(data, ","); strings.HasPrefix(data, "data:") && idx >= 0 {
		payload = data[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.jpg", staffID, uuid.NewString())
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", err
	}
	return filepath.ToSlash(path), nil
}
