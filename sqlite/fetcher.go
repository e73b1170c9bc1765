package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/htmlkit"
)

// Ensure CachingFetcher implements htmlkit.Fetcher.
var _ htmlkit.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher wraps a Fetcher with a read-through page cache. Repeat
// fetches of the same URL are served from the cache instead of the
// network.
type CachingFetcher struct {
	next     htmlkit.Fetcher
	pages    htmlkit.PageService
	renderer string
	maxAge   time.Duration
}

// CachingOption configures a CachingFetcher.
type CachingOption func(*CachingFetcher)

// WithMaxAge expires cached pages older than d, forcing a refetch.
// By default cached pages never expire.
func WithMaxAge(d time.Duration) CachingOption {
	return func(f *CachingFetcher) {
		f.maxAge = d
	}
}

// NewCachingFetcher creates a CachingFetcher around next. The renderer
// identifies how next produces HTML (htmlkit.RendererStatic or
// htmlkit.RendererBrowser) and keys the cache together with the URL.
func NewCachingFetcher(next htmlkit.Fetcher, pages htmlkit.PageService, renderer string, opts ...CachingOption) *CachingFetcher {
	f := &CachingFetcher{
		next:     next,
		pages:    pages,
		renderer: renderer,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the cached page for the URL when one is fresh enough,
// and otherwise fetches through the wrapped Fetcher and caches the
// result. Cache writes are best effort: a failed write never fails a
// successful fetch.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if page, err := f.pages.FindPage(ctx, url, f.renderer); err == nil {
		if f.maxAge == 0 || time.Since(page.FetchedAt) <= f.maxAge {
			return page.Content, nil
		}
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	_ = f.pages.CreatePage(ctx, &htmlkit.CachedPage{
		URL:      url,
		Renderer: f.renderer,
		Content:  html,
	})

	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *CachingFetcher) Close() error {
	return f.next.Close()
}
