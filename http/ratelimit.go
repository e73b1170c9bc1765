package http

import (
	"context"
	"sync"

	"github.com/fwojciec/htmlkit"
	"golang.org/x/time/rate"
)

var _ htmlkit.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests with a token bucket per domain.
// Different hosts proceed independently; within one host requests are
// held to the configured rate with no bursting, so comparing two pages
// of the same site stays polite.
type DomainLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter creates a limiter allowing rps requests per second to
// each domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// bucketFor returns the limiter for domain, creating it on first use.
func (d *DomainLimiter) bucketFor(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[domain] = b
	}
	return b
}

// Wait blocks until the domain's bucket allows another request or ctx is
// cancelled first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucketFor(domain).Wait(ctx)
}
