// Package indexing implements the write path of the engine: turning
// documents into postings. It is the single writer over the shared index
// structures; search operations only ever take the read lock.
package indexing

import (
	"fmt"

	"github.com/searchlite/searchlite/index"
	internalErrors "github.com/searchlite/searchlite/internal/errors"
	"github.com/searchlite/searchlite/internal/tokenizer"
	"github.com/searchlite/searchlite/model"
	"github.com/searchlite/searchlite/store"
)

// Service implements the indexing logic.
// It fulfills the services.Indexer interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
}

// NewService creates a new indexing Service.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if invertedIndex.Postings == nil {
		invertedIndex.Postings = make(map[string]*index.PostingEntry)
	}
	if documentStore.Docs == nil {
		documentStore.Docs = make(map[string]model.Document)
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
	}, nil
}

// AddDocument tokenizes the document's combined title+content text, filters
// stop words, and records per-term occurrence counts in the inverted index.
//
// Re-adding an existing document ID is rejected with ErrDuplicateDocument:
// postings are additive-only, so silently accepting a duplicate would leave
// the old content's postings in place while overwriting the stored document.
func (s *Service) AddDocument(doc model.Document) error {
	if doc.ID == "" {
		return internalErrors.NewValidationError("id", "document ID cannot be empty")
	}

	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	if _, exists := s.documentStore.Docs[doc.ID]; exists {
		return internalErrors.NewDuplicateDocumentError(doc.ID)
	}

	terms := tokenizer.FilterStopWords(tokenizer.Tokenize(doc.CombinedText()))

	localCounts := make(map[string]int, len(terms))
	for _, term := range terms {
		localCounts[term]++
	}

	for term, count := range localCounts {
		s.invertedIndex.FetchOrCreateUnsafe(term).Record(doc.ID, count)
	}

	s.documentStore.Docs[doc.ID] = doc
	return nil
}

// AddDocuments adds a batch of documents, stopping at the first failure.
func (s *Service) AddDocuments(docs []model.Document) error {
	for _, doc := range docs {
		if err := s.AddDocument(doc); err != nil {
			return fmt.Errorf("failed to add document ID %s: %w", doc.ID, err)
		}
	}
	return nil
}
