// File: filex.go
// Title: Core File Utilities
// Description: File helpers shared by configuration discovery and the CLI:
//              existence checks, reads with structured errors and atomic
//              writes.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package filex

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
)

// ===============================
// File Existence
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// FirstFile returns the first of paths that is a regular file
func FirstFile(paths ...string) (string, bool) {
	for _, path := range paths {
		if IsFile(path) {
			return path, true
		}
	}
	return "", false
}

// ===============================
// Reading and Writing
// ===============================

// ReadFile reads the entire file. A missing file fails with CodeNotFound,
// any other problem with CodeInvalidInput.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, dlerror.Newf("file not found: %s", path).
			WithCode(dlerror.CodeNotFound).
			WithOperation("filex.ReadFile").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, dlerror.Wrap(err, "failed to read file "+path).
			WithCode(dlerror.CodeInvalidInput).
			WithOperation("filex.ReadFile").
			WithDetail("path", path)
	}
	return content, nil
}

// WriteFileAtomic writes data next to path and renames it into place, so
// readers never see a partial file. Parent directories are created.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	const op = "filex.WriteFileAtomic"

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return writeError(op, path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return writeError(op, path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return writeError(op, path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return writeError(op, path, err)
	}
	if err := tmp.Close(); err != nil {
		return writeError(op, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return writeError(op, path, err)
	}
	return nil
}

func writeError(op, path string, err error) error {
	return dlerror.Wrap(err, "failed to write file "+path).
		WithCode(dlerror.CodeInternal).
		WithOperation(op).
		WithDetail("path", path)
}
