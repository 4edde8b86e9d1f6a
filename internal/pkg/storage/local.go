package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Create base directory if not exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// fullPath resolves name under basePath and rejects directory traversal.
func (s *LocalStorage) fullPath(name string) (string, error) {
	cleanName := filepath.Clean(name)
	full := filepath.Join(s.basePath, cleanName)
	if !strings.HasPrefix(full, s.basePath) {
		return "", fmt.Errorf("invalid file path: %s", name)
	}
	return full, nil
}

func (s *LocalStorage) Save(ctx context.Context, file io.Reader, name string) (string, error) {
	full, err := s.fullPath(name)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		// Cleanup on error, no partial files
		os.Remove(full)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return full, nil
}

func (s *LocalStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	full, err := s.fullPath(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", name)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	full, err := s.fullPath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, name string) (bool, error) {
	full, err := s.fullPath(name)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
