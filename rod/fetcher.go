// Package rod provides a browser-based implementation of htmlkit.Fetcher
// using Chrome automation, for pages that only take shape after their
// JavaScript has run.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/htmlkit"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single fetch when the caller's context
// carries no deadline of its own.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements htmlkit.Fetcher at compile time.
var _ htmlkit.Fetcher = (*Fetcher)(nil)

// Fetcher renders pages in headless Chrome and returns their DOM after
// scripts have run. Each fetch uses a fresh tab; the browser itself is
// shared and relaunched on a fixed page cadence by a BrowserManager.
// Fetcher is safe to share across goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	stable  time.Duration
	recycle int64
	closed  atomic.Bool
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each fetch whose context has no deadline.
// The default is DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithWaitStable makes each fetch wait, after the load event, until the
// DOM has stopped changing for the given duration. Use this for pages
// that keep rendering after load.
func WithWaitStable(d time.Duration) Option {
	return func(f *Fetcher) {
		f.stable = d
	}
}

// WithRecycleAfter sets how many pages the underlying browser serves
// before it is recycled. Defaults to DefaultMaxPages.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.recycle = n
	}
}

// NewFetcher launches headless Chrome and returns a Fetcher that renders
// through it. The caller owns the browser and releases it with Close.
// Launching fails when no Chrome or Chromium binary is available.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		recycle: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.recycle))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch loads url in a new tab and returns the DOM serialized after the
// page's scripts have run.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", htmlkit.Errorf(htmlkit.EINVALID, "fetcher is closed")
	}

	// A context that is already dead should not cost us a tab.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Apply the fetch timeout unless the caller brought a deadline
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Navigation and the waits below all share ctx's deadline.
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Optionally wait for post-load rendering to settle
	if f.stable > 0 {
		if err := page.WaitStable(f.stable); err != nil {
			return "", err
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close shuts down the browser and rejects any further fetches. It is
// safe to call more than once.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID reports the PID of the browser launcher process so tests
// can check that the process is really gone after Close.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
