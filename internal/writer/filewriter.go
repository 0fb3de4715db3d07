package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes container bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// WriteMSB writes buf to a temp file next to Path, flushes it to disk and
// renames it over Path. An existing file keeps its permission bits. On
// failure Path is untouched and the temp file is removed.
func (w *FileWriter) WriteMSB(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".msbkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if info, statErr := os.Stat(w.Path); statErr == nil {
		if chmodErr := tmpFile.Chmod(info.Mode().Perm()); chmodErr != nil {
			return fmt.Errorf("chmod temp file: %w", chmodErr)
		}
	}

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if syncErr := syncFile(tmpFile); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
