// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionNoDot         = errors.New("extension must start with a dot")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// ValidateExtension checks that a content file extension looks like ".txt".
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	if !strings.HasPrefix(extension, ".") || len(extension) == 1 {
		return fmt.Errorf("%w: %q", ErrExtensionNoDot, extension)
	}
	return nil
}

// ReadLines reads a text file whole and splits it into lines. Line endings
// are removed ("\r\n", "\n" and lone "\r"); a final newline does not yield
// an empty trailing line. When skipBlank is set, empty lines are dropped.
func ReadLines(path string, skipBlank bool) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from a directory listing or the CLI
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	if !skipBlank {
		return lines, nil
	}

	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return kept, nil
}

// WriteFileAtomic writes data to a temporary file in the target directory
// and renames it over path, so readers never observe a partial page.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".microcoso-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a
// name. A string containing path separators (/, \) is treated as a path:
// "blog" is a config name, "./blog.yaml" and "conf/blog" are paths.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
