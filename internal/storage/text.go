// Package storage persists plain-text files byte for byte.
//
// No newline or encoding conversion happens in either direction: what the
// buffer holds is what lands on disk.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultMode is used for files that do not exist yet.
const DefaultMode fs.FileMode = 0o644

// ReadText returns the full contents of path.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText replaces the contents of path with content.
//
// The data is written to a sibling temp file first and renamed into place,
// so a failed write never truncates the previous contents. An existing
// file keeps its permission bits. A symlink is followed and its target
// rewritten. When the directory does not allow creating the temp file the
// file is overwritten in place instead.
func WriteText(path string, content string) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := DefaultMode
	if st, err := os.Stat(path); err == nil {
		if st.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = st.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if errors.Is(err, fs.ErrPermission) {
		return writeInPlace(path, content, mode)
	}
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

func writeInPlace(path, content string, mode fs.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteScratch writes content to path in place, creating or truncating it.
// It is meant for throwaway files that are removed after use.
func WriteScratch(path string, content string) error {
	return os.WriteFile(path, []byte(content), DefaultMode)
}

// Exists reports whether anything is present at path. Stat errors other
// than not-exist count as present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}
