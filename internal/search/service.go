// Package search implements the query side of the engine: ranked
// term-frequency search over the inverted index, autocomplete from the
// prefix trie merged with query-popularity signals, and fuzzy correction
// for queries that match nothing.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/searchlite/searchlite/index"
	"github.com/searchlite/searchlite/internal/metrics"
	"github.com/searchlite/searchlite/internal/tokenizer"
	"github.com/searchlite/searchlite/internal/topk"
	"github.com/searchlite/searchlite/internal/trie"
	"github.com/searchlite/searchlite/internal/typoutil"
	"github.com/searchlite/searchlite/model"
	"github.com/searchlite/searchlite/services"
	"github.com/searchlite/searchlite/store"
)

const (
	defaultPageSize = 10

	// popularityWeight scales a suggestion's history count against the
	// base score 0 of a pure-trie match.
	popularityWeight = 10
)

// Service composes the inverted index, the prefix trie, the top-K
// selector, and the edit-distance matcher to answer queries. Cache and
// history collaborators are optional; a nil handle disables the feature
// and every collaborator failure degrades to the uncached/unweighted
// path.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	trie          atomic.Pointer[trie.Trie]

	cache    services.Cache
	history  services.HistoryStore
	cacheTTL time.Duration

	group  singleflight.Group
	logger *slog.Logger
}

// NewService creates a new search Service. cache and history may be nil.
func NewService(
	invIndex *index.InvertedIndex,
	docStore *store.DocumentStore,
	cache services.Cache,
	history services.HistoryStore,
	cacheTTL time.Duration,
) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}

	s := &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		cache:         cache,
		history:       history,
		cacheTTL:      cacheTTL,
		logger:        slog.Default().With("component", "search"),
	}
	s.trie.Store(trie.New())
	return s, nil
}

// RebuildTrie builds a fresh autocomplete trie from the given corpus and
// atomically publishes it. In-flight autocomplete calls keep reading the
// old snapshot until the swap.
func (s *Service) RebuildTrie(docs []model.Document) {
	built := trie.BuildFromDocuments(docs, tokenizer.Tokenize, tokenizer.ExtractPhrases)
	s.trie.Store(built)
	s.logger.Info("autocomplete trie rebuilt", "documents", len(docs), "words", built.Len())
}

// scoredDocument pairs a document ID with its accumulated relevance score.
type scoredDocument struct {
	DocumentID string  `json:"document_id"`
	Score      float64 `json:"score"`
}

// searchIndex runs the core ranked retrieval: the sum of term frequencies
// across all matched query terms, sorted by score descending with document
// ID as the deterministic tie-break.
func (s *Service) searchIndex(terms []string) []scoredDocument {
	s.invertedIndex.Mu.RLock()
	defer s.invertedIndex.Mu.RUnlock()

	scores := make(map[string]float64)
	for _, term := range terms {
		entry, ok := s.invertedIndex.Postings[term]
		if !ok {
			continue // absent terms contribute nothing
		}
		for docID, freq := range entry.TermFrequency {
			scores[docID] += float64(freq)
		}
	}

	ranked := make([]scoredDocument, 0, len(scores))
	for docID, score := range scores {
		ranked = append(ranked, scoredDocument{DocumentID: docID, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].DocumentID < ranked[j].DocumentID
	})
	return ranked
}

// Search answers a ranked query. Zero hits trigger a fuzzy correction
// attempt against the index vocabulary; when a correction within the edit
// threshold exists the corrected query is searched instead and surfaced in
// the result.
func (s *Service) Search(ctx context.Context, query string, page, pageSize int) (services.SearchResult, error) {
	startTime := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(startTime).Seconds())
	}()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	cacheKey := fmt.Sprintf("search:%s:%d:%d", normalized, page, pageSize)

	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		var result services.SearchResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			result.Cached = true
			result.Took = time.Since(startTime).Milliseconds()
			s.recordQuery(ctx, normalized)
			return result, nil
		}
		s.logger.Warn("discarding undecodable cache entry", "key", cacheKey)
	}

	// Collapse concurrent identical queries into one computation.
	value, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		result := s.executeSearch(normalized, page, pageSize)
		if payload, err := json.Marshal(result); err == nil {
			s.cacheSet(ctx, cacheKey, string(payload))
		}
		return result, nil
	})
	if err != nil {
		return services.SearchResult{}, err
	}

	result := value.(services.SearchResult)
	result.QueryID = uuid.NewString()
	result.Took = time.Since(startTime).Milliseconds()
	s.recordQuery(ctx, normalized)
	return result, nil
}

// executeSearch runs the uncached search pipeline.
func (s *Service) executeSearch(query string, page, pageSize int) services.SearchResult {
	result := services.SearchResult{
		Hits:     []services.Hit{},
		Page:     page,
		PageSize: pageSize,
	}

	terms := tokenizer.FilterStopWords(tokenizer.Tokenize(query))
	if len(terms) == 0 {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return result
	}

	ranked := s.searchIndex(terms)

	if len(ranked) == 0 {
		if corrected, ok := s.correct(terms); ok {
			ranked = s.searchIndex([]string{corrected})
			result.CorrectedQuery = corrected
		}
	}

	if len(ranked) == 0 {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return result
	}
	if result.CorrectedQuery != "" {
		metrics.SearchesTotal.WithLabelValues("corrected").Inc()
	} else {
		metrics.SearchesTotal.WithLabelValues("hit").Inc()
	}

	result.Total = len(ranked)

	start := (page - 1) * pageSize
	if start >= len(ranked) {
		return result
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}

	for _, scored := range ranked[start:end] {
		doc, ok := s.documentStore.Get(scored.DocumentID)
		if !ok {
			// Postings and store are mutated under the same locks; a
			// dangling posting would mean that invariant broke.
			s.logger.Error("posting references missing document", "document_id", scored.DocumentID)
			continue
		}
		result.Hits = append(result.Hits, services.Hit{Document: doc, Score: scored.Score})
	}
	return result
}

// correct finds the closest vocabulary term for the first query term that
// produced no postings. Correction is attempted term by term so a
// multi-word query with one typo still recovers.
func (s *Service) correct(terms []string) (string, bool) {
	vocabulary := s.invertedIndex.Terms()
	for _, term := range terms {
		corrected, ok := typoutil.ClosestTerm(term, vocabulary, s.invertedIndex.DocumentFrequency)
		if ok && corrected != term {
			return corrected, true
		}
	}
	return "", false
}

// Autocomplete returns ranked completions for prefix: trie matches carry a
// base score of zero and queries from the popularity history are weighted
// by their count, with the bounded selector picking the top limit.
func (s *Service) Autocomplete(ctx context.Context, prefix string, limit int) ([]services.Suggestion, error) {
	metrics.AutocompleteTotal.Inc()

	if limit <= 0 {
		limit = defaultPageSize
	}
	normalized := strings.ToLower(strings.TrimSpace(prefix))
	if normalized == "" {
		return []services.Suggestion{}, nil
	}

	cacheKey := fmt.Sprintf("autocomplete:%s:%d", normalized, limit)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		var suggestions []services.Suggestion
		if err := json.Unmarshal([]byte(cached), &suggestions); err == nil {
			return suggestions, nil
		}
	}

	candidates := make(map[string]float64)
	for _, word := range s.trie.Load().Suggest(normalized, limit) {
		candidates[word] = 0
	}

	if s.history != nil {
		popular, err := s.history.Popular(ctx, normalized, limit)
		if err != nil {
			// Degrade to unweighted trie output.
			s.logger.Warn("history lookup failed", "prefix", normalized, "error", err)
		} else {
			for _, entry := range popular {
				candidates[entry.Term] = float64(entry.Count) * popularityWeight
			}
		}
	}

	selector := topk.NewSelector(limit)
	for term, score := range candidates {
		selector.Offer(term, score)
	}

	suggestions := make([]services.Suggestion, 0, limit)
	for _, candidate := range selector.Results() {
		suggestions = append(suggestions, services.Suggestion{Term: candidate.Key, Score: candidate.Score})
	}

	if payload, err := json.Marshal(suggestions); err == nil {
		s.cacheSet(ctx, cacheKey, string(payload))
	}
	return suggestions, nil
}

// cacheGet is a fail-open cache read.
func (s *Service) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	value, ok := s.cache.Get(ctx, key)
	if ok {
		metrics.CacheRequests.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheRequests.WithLabelValues("miss").Inc()
	}
	return value, ok
}

// cacheSet is a fail-open cache write.
func (s *Service) cacheSet(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, value, s.cacheTTL)
}

// recordQuery stores the query in the popularity history; failures only
// cost the popularity signal, never the request.
func (s *Service) recordQuery(ctx context.Context, query string) {
	if s.history == nil || query == "" {
		return
	}
	if err := s.history.Record(ctx, query); err != nil {
		s.logger.Warn("failed to record query history", "query", query, "error", err)
	}
}
