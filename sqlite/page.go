package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htmlkit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ htmlkit.PageService = (*PageService)(nil)

// PageService implements htmlkit.PageService using SQLite. Pages are
// keyed by URL and renderer, so static and browser-rendered fetches of
// the same URL are cached side by side.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes the xxHash of content and returns it as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// CreatePage stores a fetched page, replacing any existing page with the
// same URL and renderer. The ID, content hash, and fetch timestamp are
// assigned here.
func (s *PageService) CreatePage(ctx context.Context, page *htmlkit.CachedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO pages (id, url, renderer, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Renderer, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPage retrieves the cached page for a URL and renderer.
func (s *PageService) FindPage(ctx context.Context, url, renderer string) (*htmlkit.CachedPage, error) {
	var page htmlkit.CachedPage
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, renderer, content, content_hash, fetched_at
		FROM pages
		WHERE url = ? AND renderer = ?
	`, url, renderer).Scan(&page.ID, &page.URL, &page.Renderer, &page.Content,
		&page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, htmlkit.Errorf(htmlkit.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}

// DeletePagesBefore removes pages fetched before the cutoff and returns
// the number of pages removed. Timestamps are stored as RFC3339 UTC
// strings, which order lexicographically.
func (s *PageService) DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM pages WHERE fetched_at < ?",
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}
