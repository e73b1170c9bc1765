// Package http fetches pages over plain HTTP, for static sites whose
// HTML is complete without running JavaScript.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/htmlkit"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout bounds a request when no option overrides it.
// Matches rod.DefaultFetchTimeout so both transports behave alike.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the tool to servers.
const userAgent = "htmlkit/1.0 (+https://github.com/fwojciec/htmlkit)"

var _ htmlkit.Fetcher = (*Fetcher)(nil)

// Fetcher downloads HTML with a plain GET. Pages that assemble their DOM
// client-side need rod.Fetcher instead.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter htmlkit.DomainLimiter
}

// Option adjusts a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides DefaultFetchTimeout for this fetcher's requests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithLimiter rate limits fetches through the given limiter, keyed by the
// host of the requested URL. No limiting is applied by default.
func WithLimiter(l htmlkit.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch downloads url and returns the body decoded to UTF-8. The source
// encoding comes from the Content-Type header when present, otherwise
// from byte-order marks or meta tags in the body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Host); err != nil {
			return "", err
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close is a no-op; the underlying http.Client needs no teardown.
func (f *Fetcher) Close() error {
	return nil
}
