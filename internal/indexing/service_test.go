package indexing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchlite/searchlite/index"
	internalErrors "github.com/searchlite/searchlite/internal/errors"
	"github.com/searchlite/searchlite/model"
	"github.com/searchlite/searchlite/store"
)

func newTestService(t *testing.T) (*Service, *index.InvertedIndex, *store.DocumentStore) {
	t.Helper()
	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()
	service, err := NewService(invIndex, docStore)
	require.NoError(t, err)
	return service, invIndex, docStore
}

func TestAddDocumentCountsTermFrequencies(t *testing.T) {
	service, invIndex, docStore := newTestService(t)

	err := service.AddDocument(model.Document{
		ID:      "1",
		Title:   "Python Guide",
		Content: "Python is great",
	})
	require.NoError(t, err)

	// Title and content are concatenated before tokenization, so
	// "python" occurs twice in document 1.
	entry, ok := invIndex.Postings["python"]
	require.True(t, ok, "expected a posting entry for 'python'")
	assert.Equal(t, 2, entry.TermFrequency["1"])
	assert.Equal(t, 1, entry.DocumentFrequency)

	// "is" is a stop word and must not be indexed.
	_, ok = invIndex.Postings["is"]
	assert.False(t, ok, "stop word 'is' should not be indexed")

	assert.Equal(t, 1, docStore.Len())
}

func TestAddDocumentDuplicateIDRejected(t *testing.T) {
	service, invIndex, _ := newTestService(t)

	require.NoError(t, service.AddDocument(model.Document{ID: "1", Content: "python search"}))

	err := service.AddDocument(model.Document{ID: "1", Content: "completely different text"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrDuplicateDocument))

	// The rejected document must not have leaked any postings.
	_, ok := invIndex.Postings["completely"]
	assert.False(t, ok)
}

func TestAddDocumentEmptyIDRejected(t *testing.T) {
	service, _, _ := newTestService(t)

	err := service.AddDocument(model.Document{Content: "no id"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrInvalidInput))
}

// TestPostingInvariants checks documentFrequency == |documentIDs| and
// termFrequency keys being a subset of documentIDs after a series of adds.
func TestPostingInvariants(t *testing.T) {
	service, invIndex, _ := newTestService(t)

	docs := []model.Document{
		{ID: "1", Content: "the cat sat"},
		{ID: "2", Content: "the cat ran fast"},
		{ID: "3", Content: "python cat python"},
	}
	require.NoError(t, service.AddDocuments(docs))

	for term, entry := range invIndex.Postings {
		assert.Equal(t, len(entry.DocumentIDs), entry.DocumentFrequency,
			"documentFrequency drifted for term %q", term)
		for docID := range entry.TermFrequency {
			_, ok := entry.DocumentIDs[docID]
			assert.True(t, ok, "termFrequency key %q for %q missing from documentIDs", docID, term)
		}
	}

	catEntry := invIndex.Postings["cat"]
	require.NotNil(t, catEntry)
	assert.Equal(t, 3, catEntry.DocumentFrequency)
	assert.Equal(t, 2, invIndex.Postings["python"].TermFrequency["3"])
}

func TestAddDocumentsStopsAtFirstFailure(t *testing.T) {
	service, _, docStore := newTestService(t)

	docs := []model.Document{
		{ID: "1", Content: "fine"},
		{ID: "1", Content: "duplicate"},
		{ID: "2", Content: "never reached"},
	}
	err := service.AddDocuments(docs)
	require.Error(t, err)
	assert.Equal(t, 1, docStore.Len())
}
