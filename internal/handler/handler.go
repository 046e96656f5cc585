package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileHandler performs the vault's file mutations. Writes go through a temp
// file in the target directory followed by a rename so a crash cannot leave
// a half-written note behind.
type FileHandler struct {
	vaultDir string
}

func NewFileHandler(vaultDir string) *FileHandler {
	return &FileHandler{vaultDir: vaultDir}
}

func (h *FileHandler) VaultDir() string {
	return h.vaultDir
}

func (h *FileHandler) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return string(data), nil
}

// WriteFile replaces the file at path with content atomically on success.
func (h *FileHandler) WriteFile(path, content string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return nil
}

func (h *FileHandler) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (h *FileHandler) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Touch sets the file's modification and access times to ts. Index files
// get a synthetic timestamp so directory listings sort chronologically
// regardless of edit recency.
func (h *FileHandler) Touch(path string, ts time.Time) error {
	if err := os.Chtimes(path, ts, ts); err != nil {
		return fmt.Errorf("touch %s: %w", filepath.Base(path), err)
	}
	return nil
}
