// Package history persists query popularity counts in SQLite. Counts feed
// the autocomplete ranking: suggestions users actually searched for
// outrank raw trie matches.
package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/searchlite/searchlite/services"
)

const schema = `
CREATE TABLE IF NOT EXISTS query_history (
    query      TEXT PRIMARY KEY,
    count      INTEGER NOT NULL DEFAULT 1,
    last_seen  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_query_history_count ON query_history (count DESC);
`

// Store implements services.HistoryStore on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %s: %w", path, err)
	}
	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent request handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record upserts the normalized query, incrementing its count.
func (s *Store) Record(ctx context.Context, query string) error {
	if query == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO query_history (query, count, last_seen) VALUES (?, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(query) DO UPDATE SET count = count + 1, last_seen = CURRENT_TIMESTAMP`,
		query,
	)
	if err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}
	return nil
}

// Popular returns up to limit past queries starting with prefix, ordered
// by count descending.
func (s *Store) Popular(ctx context.Context, prefix string, limit int) ([]services.PopularQuery, error) {
	if limit <= 0 {
		return []services.PopularQuery{}, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT query, count FROM query_history
		 WHERE query LIKE ? ESCAPE '\'
		 ORDER BY count DESC, query ASC
		 LIMIT ?`,
		escapeLike(prefix)+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular history: %w", err)
	}
	defer rows.Close()

	popular := make([]services.PopularQuery, 0, limit)
	for rows.Next() {
		var entry services.PopularQuery
		if err := rows.Scan(&entry.Term, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		popular = append(popular, entry)
	}
	return popular, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// escapeLike escapes LIKE metacharacters so a prefix containing '%' or '_'
// matches literally.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
