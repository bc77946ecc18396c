// Package services defines the narrow contracts between the engine core
// and its collaborators, plus the result types shared across the API
// boundary.
package services

import (
	"context"
	"time"

	"github.com/searchlite/searchlite/model"
)

// Hit represents a single ranked document in the search results.
type Hit struct {
	Document model.Document `json:"document"`
	Score    float64        `json:"score"`
}

// SearchResult is the response of a search operation.
type SearchResult struct {
	Hits           []Hit  `json:"hits"`
	Total          int    `json:"total"`
	Page           int    `json:"page"`
	PageSize       int    `json:"page_size"`
	CorrectedQuery string `json:"corrected_query,omitempty"` // set when a zero-hit query was fuzzy-corrected
	Took           int64  `json:"took"`                      // milliseconds
	QueryID        string `json:"query_id"`                  // unique UUID for this search query
	Cached         bool   `json:"cached"`
}

// Suggestion is a single ranked autocomplete completion.
type Suggestion struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// PopularQuery is an aggregated history entry for a past query.
type PopularQuery struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Indexer defines operations for adding documents to the index.
type Indexer interface {
	AddDocument(doc model.Document) error
	AddDocuments(docs []model.Document) error
}

// Searcher defines the query operations exposed by the orchestrator.
type Searcher interface {
	Search(ctx context.Context, query string, page, pageSize int) (SearchResult, error)
	Autocomplete(ctx context.Context, prefix string, limit int) ([]Suggestion, error)
}

// DocumentReader provides access to the stored document corpus.
type DocumentReader interface {
	GetDocument(id string) (model.Document, error)
	Documents() []model.Document
	RandomDocuments(n int) []model.Document
}

// Cache memoizes search and autocomplete responses. Implementations must
// be safe to fail: a miss and an unavailable backend look the same to
// callers.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// HistoryStore records executed queries and serves popularity counts for
// autocomplete ranking.
type HistoryStore interface {
	Record(ctx context.Context, query string) error
	Popular(ctx context.Context, prefix string, limit int) ([]PopularQuery, error)
}

// DocumentSource is the opaque persistence used to load the corpus at
// startup and save it after mutations.
type DocumentSource interface {
	LoadDocuments() ([]model.Document, error)
	SaveDocuments(docs []model.Document) error
}

// EngineStats describes the engine's current size.
type EngineStats struct {
	Documents      int `json:"documents"`
	VocabularySize int `json:"vocabulary_size"`
}

// Engine aggregates the operations the HTTP layer exposes.
type Engine interface {
	Indexer
	Searcher
	DocumentReader
	ScrapeAndIndex(ctx context.Context, url string) (model.Document, error)
	Stats() EngineStats
}
