// Package metrics exposes Prometheus collectors for the engine's hot
// paths.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts search requests by outcome ("hit", "empty",
	// "corrected").
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "searchlite_searches_total",
		Help: "Total number of search requests by outcome.",
	}, []string{"outcome"})

	// SearchDuration tracks end-to-end search latency.
	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "searchlite_search_duration_seconds",
		Help:    "Search request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	})

	// CacheRequests counts cache lookups by result ("hit", "miss").
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "searchlite_cache_requests_total",
		Help: "Total number of cache lookups by result.",
	}, []string{"result"})

	// DocumentsIndexed counts documents added to the index.
	DocumentsIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "searchlite_documents_indexed_total",
		Help: "Total number of documents added to the index.",
	})

	// AutocompleteTotal counts autocomplete requests.
	AutocompleteTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "searchlite_autocomplete_requests_total",
		Help: "Total number of autocomplete requests.",
	})
)
