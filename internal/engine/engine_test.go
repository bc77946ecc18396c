package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/searchlite/searchlite/internal/errors"
	"github.com/searchlite/searchlite/internal/storage"
	"github.com/searchlite/searchlite/model"
)

func TestEngineLoadsPersistedCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documents.gob")
	source := storage.NewFileSource(path)

	first, err := New(source, nil, nil, time.Minute)
	require.NoError(t, err)

	require.NoError(t, first.AddDocuments([]model.Document{
		{ID: "1", Title: "Python Guide", Content: "Python is great"},
		{ID: "2", Content: "the cat sat"},
	}))

	// A fresh engine over the same source must rebuild index and trie
	// from the persisted corpus.
	second, err := New(source, nil, nil, time.Minute)
	require.NoError(t, err)

	result, err := second.Search(context.Background(), "python", 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, 2.0, result.Hits[0].Score)

	suggestions, err := second.Autocomplete(context.Background(), "pyth", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, suggestions)
}

func TestEngineGetDocument(t *testing.T) {
	source := storage.NewFileSource(filepath.Join(t.TempDir(), "documents.gob"))
	eng, err := New(source, nil, nil, time.Minute)
	require.NoError(t, err)

	require.NoError(t, eng.AddDocument(model.Document{ID: "1", Content: "hello world"}))

	doc, err := eng.GetDocument("1")
	require.NoError(t, err)
	assert.Equal(t, "1", doc.ID)

	_, err = eng.GetDocument("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrDocumentNotFound))
}

func TestEngineStats(t *testing.T) {
	source := storage.NewFileSource(filepath.Join(t.TempDir(), "documents.gob"))
	eng, err := New(source, nil, nil, time.Minute)
	require.NoError(t, err)

	require.NoError(t, eng.AddDocument(model.Document{ID: "1", Content: "python search engine"}))

	stats := eng.Stats()
	assert.Equal(t, 1, stats.Documents)
	assert.Equal(t, 3, stats.VocabularySize)
}
