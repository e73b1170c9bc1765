package htmlkit

import (
	"context"
	"time"
)

// Renderer values recorded on cached pages. Pages fetched statically and
// pages rendered in a browser are cached independently for the same URL.
const (
	RendererStatic  = "static"
	RendererBrowser = "browser"
)

// CachedPage represents a fetched page stored in the local page cache.
type CachedPage struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Renderer    string    `json:"renderer"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *CachedPage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Renderer != RendererStatic && p.Renderer != RendererBrowser {
		return Errorf(EINVALID, "unknown renderer %q", p.Renderer)
	}
	return nil
}

// PageService represents a service for managing cached pages.
type PageService interface {
	// CreatePage stores a fetched page, replacing any existing page
	// with the same URL and renderer.
	CreatePage(ctx context.Context, page *CachedPage) error

	// FindPage retrieves the cached page for a URL and renderer.
	// Returns ENOTFOUND if no page is cached.
	FindPage(ctx context.Context, url, renderer string) (*CachedPage, error)

	// DeletePagesBefore removes pages fetched before the cutoff and
	// returns the number of pages removed.
	DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error)
}
