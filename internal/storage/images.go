// Package storage writes uploaded product images to the upload directory.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"catalog/pkg/utils"
)

// ErrUnusableName means nothing safe is left of the upload's filename.
var ErrUnusableName = errors.New("unusable upload filename")

type ImageStore interface {
	// Save stores the upload and returns the filename it was stored under.
	Save(file *multipart.FileHeader) (string, error)
	Remove(filename string) error
	Allowed(filename string) bool
}

type DiskImageStore struct {
	dir        string
	extensions []string
}

func NewDiskImageStore(dir string, extensions []string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &DiskImageStore{dir: dir, extensions: extensions}, nil
}

func (s *DiskImageStore) Allowed(filename string) bool {
	return utils.AllowedFile(filename, s.extensions)
}

func (s *DiskImageStore) Save(file *multipart.FileHeader) (string, error) {
	name := utils.SecureFilename(file.Filename)
	if name == "" || !s.Allowed(name) {
		return "", fmt.Errorf("%w: %q", ErrUnusableName, file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, name, err := s.create(name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("close upload: %w", err)
	}
	return name, nil
}

// create opens name exclusively, adding a short random suffix when another
// upload already owns it.
func (s *DiskImageStore) create(name string) (*os.File, string, error) {
	candidate := name
	for attempt := 0; attempt < 5; attempt++ {
		f, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create upload: %w", err)
		}
		ext := filepath.Ext(name)
		candidate = strings.TrimSuffix(name, ext) + "-" + uuid.NewString()[:8] + ext
	}
	return nil, "", fmt.Errorf("create upload: no free name for %q", name)
}

func (s *DiskImageStore) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
