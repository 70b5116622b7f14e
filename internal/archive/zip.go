// Package archive packs resolved source files into the zip payload the
// protection service expects and unpacks the zips it returns.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Pack zips the given cwd-relative files into an in-memory archive. Entry
// names keep the relative, slash-separated path so the service reconstructs
// the original layout.
func Pack(files []string, cwd string) ([]byte, error) {
	if cwd == "" {
		cwd = "."
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(cwd, file))
		if err != nil {
			return nil, fmt.Errorf("error reading source %s: %w", file, err)
		}

		w, err := zw.Create(filepath.ToSlash(file))
		if err != nil {
			return nil, fmt.Errorf("error adding %s to archive: %w", file, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("error writing %s to archive: %w", file, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("error finishing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Unpack extracts a zip archive into destDir, creating it if needed. Entry
// paths are confined to destDir; an entry that would escape it fails the
// whole extraction.
func Unpack(data []byte, destDir string) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("error opening downloaded archive: %w", err)
	}

	for _, entry := range zr.File {
		if err := extractEntry(entry, destDir); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, destDir string) error {
	target := filepath.Join(destDir, filepath.FromSlash(entry.Name))

	// Reject entries escaping the destination (zip slip).
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("archive entry %q escapes the destination directory", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", entry.Name, err)
	}

	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("error opening archive entry %s: %w", entry.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("error extracting %s: %w", entry.Name, err)
	}
	return nil
}
