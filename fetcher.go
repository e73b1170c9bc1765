package htmlkit

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content, or plain HTTP for static pages.
type Fetcher interface {
	// Fetch retrieves the document at the URL and returns its HTML.
	// Cancelling ctx abandons the fetch.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases whatever the implementation holds open, such as a
	// browser process. A closed Fetcher rejects further fetches.
	Close() error
}

// DomainLimiter rate limits requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed, or returns
	// an error if the context is canceled first.
	Wait(ctx context.Context, domain string) error
}
