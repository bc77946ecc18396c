// Package persistence provides gob file helpers for the document corpus.
package persistence

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// SaveGob gob-encodes object into the file at path, creating parent
// directories as needed.
func SaveGob(path string, object interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	file, err := os.Create(path) // #nosec G304 -- path comes from configuration, not request input
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close file after save", "path", path, "error", closeErr)
		}
	}()

	if err := gob.NewEncoder(file).Encode(object); err != nil {
		return fmt.Errorf("failed to gob encode to %s: %w", path, err)
	}
	return nil
}

// LoadGob decodes the gob file at path into objectPointer. A missing file
// is reported as os.ErrNotExist so callers can treat it as a fresh start.
func LoadGob(path string, objectPointer interface{}) error {
	file, err := os.Open(path) // #nosec G304 -- path comes from configuration, not request input
	if err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close file after load", "path", path, "error", closeErr)
		}
	}()

	if err := gob.NewDecoder(file).Decode(objectPointer); err != nil {
		return fmt.Errorf("failed to gob decode from %s: %w", path, err)
	}
	return nil
}
