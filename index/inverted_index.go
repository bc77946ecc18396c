// Package index holds the inverted index: a map from normalized terms to
// posting entries. Mutation goes through the indexing service, which is
// the single writer; reads take the shared lock.
package index

import "sync"

// InvertedIndex maps a term (token) to its posting entry.
type InvertedIndex struct {
	Mu       sync.RWMutex
	Postings map[string]*PostingEntry
}

// NewInvertedIndex creates an empty inverted index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{Postings: make(map[string]*PostingEntry)}
}

// FetchOrCreateUnsafe returns the posting entry for term, creating it if
// absent. The caller must hold the write lock.
func (ii *InvertedIndex) FetchOrCreateUnsafe(term string) *PostingEntry {
	entry, ok := ii.Postings[term]
	if !ok {
		entry = NewPostingEntry()
		ii.Postings[term] = entry
	}
	return entry
}

// Terms returns a snapshot of the index vocabulary.
func (ii *InvertedIndex) Terms() []string {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()

	terms := make([]string, 0, len(ii.Postings))
	for term := range ii.Postings {
		terms = append(terms, term)
	}
	return terms
}

// DocumentFrequency returns the number of documents containing term, or 0
// when the term is not in the vocabulary.
func (ii *InvertedIndex) DocumentFrequency(term string) int {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()

	if entry, ok := ii.Postings[term]; ok {
		return entry.DocumentFrequency
	}
	return 0
}

// VocabularySize returns the number of distinct terms in the index.
func (ii *InvertedIndex) VocabularySize() int {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()
	return len(ii.Postings)
}
