// Package engine is the application composition root: it owns the one
// inverted index, the one document store, the autocomplete trie, and the
// collaborator handles, and wires them into the indexing and search
// services. Nothing in the repository holds this state globally.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/searchlite/searchlite/index"
	internalErrors "github.com/searchlite/searchlite/internal/errors"
	"github.com/searchlite/searchlite/internal/indexing"
	"github.com/searchlite/searchlite/internal/metrics"
	"github.com/searchlite/searchlite/internal/scraper"
	"github.com/searchlite/searchlite/internal/search"
	"github.com/searchlite/searchlite/model"
	"github.com/searchlite/searchlite/services"
	"github.com/searchlite/searchlite/store"
)

// Engine bundles the core structures and services behind the interfaces
// the API layer consumes.
type Engine struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore

	indexer  *indexing.Service
	searcher *search.Service
	scraper  *scraper.Scraper
	source   services.DocumentSource

	logger *slog.Logger
}

// New creates an engine, loads the persisted corpus from source, indexes
// it, and builds the autocomplete trie. cache and history may be nil.
func New(
	source services.DocumentSource,
	cache services.Cache,
	history services.HistoryStore,
	cacheTTL time.Duration,
) (*Engine, error) {
	if source == nil {
		return nil, fmt.Errorf("document source cannot be nil")
	}

	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()

	indexer, err := indexing.NewService(invIndex, docStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexing service: %w", err)
	}
	searcher, err := search.NewService(invIndex, docStore, cache, history, cacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	eng := &Engine{
		invertedIndex: invIndex,
		documentStore: docStore,
		indexer:       indexer,
		searcher:      searcher,
		scraper:       scraper.New(),
		source:        source,
		logger:        slog.Default().With("component", "engine"),
	}

	docs, err := source.LoadDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to load document corpus: %w", err)
	}
	for _, doc := range docs {
		if err := indexer.AddDocument(doc); err != nil {
			eng.logger.Warn("skipping unindexable persisted document", "document_id", doc.ID, "error", err)
		}
	}
	eng.searcher.RebuildTrie(eng.documentStore.All())
	eng.logger.Info("engine ready", "documents", eng.documentStore.Len(), "vocabulary", invIndex.VocabularySize())

	return eng, nil
}

// AddDocument indexes one document, persists the corpus, and rebuilds the
// autocomplete trie.
func (e *Engine) AddDocument(doc model.Document) error {
	return e.AddDocuments([]model.Document{doc})
}

// AddDocuments indexes a batch of documents. The corpus is persisted and
// the trie rebuilt once, after the whole batch.
func (e *Engine) AddDocuments(docs []model.Document) error {
	if err := e.indexer.AddDocuments(docs); err != nil {
		return err
	}
	metrics.DocumentsIndexed.Add(float64(len(docs)))

	if err := e.source.SaveDocuments(e.documentStore.All()); err != nil {
		return fmt.Errorf("documents indexed but corpus persistence failed: %w", err)
	}
	e.searcher.RebuildTrie(e.documentStore.All())
	return nil
}

// Search delegates to the search service.
func (e *Engine) Search(ctx context.Context, query string, page, pageSize int) (services.SearchResult, error) {
	return e.searcher.Search(ctx, query, page, pageSize)
}

// Autocomplete delegates to the search service.
func (e *Engine) Autocomplete(ctx context.Context, prefix string, limit int) ([]services.Suggestion, error) {
	return e.searcher.Autocomplete(ctx, prefix, limit)
}

// GetDocument returns the stored document with the given ID.
func (e *Engine) GetDocument(id string) (model.Document, error) {
	doc, ok := e.documentStore.Get(id)
	if !ok {
		return model.Document{}, internalErrors.NewDocumentNotFoundError(id)
	}
	return doc, nil
}

// Documents returns a snapshot of the full corpus.
func (e *Engine) Documents() []model.Document {
	return e.documentStore.All()
}

// RandomDocuments returns a uniform sample of up to n documents.
func (e *Engine) RandomDocuments(n int) []model.Document {
	return e.documentStore.Random(n)
}

// ScrapeAndIndex fetches the URL, indexes the resulting document, and
// returns it.
func (e *Engine) ScrapeAndIndex(ctx context.Context, url string) (model.Document, error) {
	doc, err := e.scraper.Scrape(ctx, url)
	if err != nil {
		return model.Document{}, err
	}
	if err := e.AddDocument(doc); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}

// Stats reports corpus and vocabulary sizes.
func (e *Engine) Stats() services.EngineStats {
	return services.EngineStats{
		Documents:      e.documentStore.Len(),
		VocabularySize: e.invertedIndex.VocabularySize(),
	}
}
