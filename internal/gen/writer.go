package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes files into outputDir, creating it if needed. Files whose
// content is unchanged are left alone; the others are replaced through a
// rename so readers never observe a partial file.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if old, err := os.ReadFile(outputPath); err == nil && bytes.Equal(old, file.Content) {
			continue
		}

		tmp := filepath.Join(outputDir, "."+file.Filename+".tmp")
		if err := os.WriteFile(tmp, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		if err := os.Rename(tmp, outputPath); err != nil {
			_ = os.Remove(tmp)

			return fmt.Errorf("replacing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// IsGenerated reports whether name is a file this package writes.
func IsGenerated(name string) bool {
	return strings.HasSuffix(name, "_gen.go") || strings.HasSuffix(name, debugSuffix)
}

// Clean removes generated files from dir except those named in keep, so
// vendors dropped by a newer snapshot do not linger. A missing dir is not an
// error.
func Clean(dir string, keep ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	var removed []string

	for _, e := range entries {
		if e.IsDir() || !IsGenerated(e.Name()) || slices.Contains(keep, e.Name()) {
			continue
		}

		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return removed, fmt.Errorf("removing %s: %w", e.Name(), err)
		}

		removed = append(removed, e.Name())
	}

	return removed, nil
}
