// Package file provides the small set of filesystem operations the exporter needs.
package file

import (
	"os"
	"path/filepath"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Exists reports whether anything exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsRegular reports whether path is a regular file.
func IsRegular(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// WriteText writes content to dir/name, creating dir and its parents when
// missing. Existing files are replaced. It returns the written path.
func WriteText(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return "", err
	}
	return path, nil
}

// Rel returns path relative to base when possible, for display.
func Rel(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}
