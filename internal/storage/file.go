// Package storage implements the services.DocumentSource contract as a
// single gob file on disk. The engine loads the corpus at startup and
// saves it after every mutation; the file format is an implementation
// detail nobody else reads.
package storage

import (
	"fmt"
	"os"

	"github.com/searchlite/searchlite/internal/persistence"
	"github.com/searchlite/searchlite/model"
)

// FileSource loads and saves the document corpus from a gob file.
type FileSource struct {
	path string
}

// NewFileSource creates a document source backed by the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// LoadDocuments reads the corpus. A missing file is a fresh start, not an
// error.
func (f *FileSource) LoadDocuments() ([]model.Document, error) {
	var docs []model.Document
	if err := persistence.LoadGob(f.path, &docs); err != nil {
		if err == os.ErrNotExist {
			return []model.Document{}, nil
		}
		return nil, fmt.Errorf("failed to load documents from %s: %w", f.path, err)
	}
	return docs, nil
}

// SaveDocuments writes the full corpus.
func (f *FileSource) SaveDocuments(docs []model.Document) error {
	if err := persistence.SaveGob(f.path, docs); err != nil {
		return fmt.Errorf("failed to save documents to %s: %w", f.path, err)
	}
	return nil
}
