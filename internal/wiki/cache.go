// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// PageCache stores fetched page HTML in a SQLite database so repeated
// sessions against the same pages stay off the network. The cache belongs
// to the retrieval client; callers above it never observe whether a page
// came from disk.
type PageCache struct {
	db  *sql.DB
	ttl time.Duration
}

const defaultCacheTTL = 24 * time.Hour

// OpenCache opens or creates the page cache at path. Entries older than
// ttl are treated as absent and overwritten on the next fetch. A ttl of 0
// selects the default (24h).
func OpenCache(path string, ttl time.Duration) (*PageCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening page cache: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS pages (
		title      TEXT PRIMARY KEY,
		html       TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating page cache schema: %w", err)
	}

	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &PageCache{db: db, ttl: ttl}, nil
}

// Close releases the database connection.
func (c *PageCache) Close() error {
	return c.db.Close()
}

// Get returns the cached HTML for title if present and fresh.
func (c *PageCache) Get(ctx context.Context, title string) (string, bool) {
	var html, fetchedAt string
	err := c.db.QueryRowContext(ctx,
		`SELECT html, fetched_at FROM pages WHERE title = ?`, title,
	).Scan(&html, &fetchedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			// Treat read errors as a miss; the network path still works.
			return "", false
		}
		return "", false
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil || time.Since(t) > c.ttl {
		return "", false
	}
	return html, true
}

// Put stores the HTML for title, replacing any stale entry.
func (c *PageCache) Put(ctx context.Context, title, html string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO pages (title, html, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(title) DO UPDATE SET html = excluded.html, fetched_at = excluded.fetched_at`,
		title, html, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing page cache entry for %q: %w", title, err)
	}
	return nil
}
