package http_test

import (
	"context"
	"sync"
	"testing"
	"time"

	htmlkithttp "github.com/fwojciec/htmlkit/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request passes without waiting", func(t *testing.T) {
		t.Parallel()

		limiter := htmlkithttp.NewDomainLimiter(10)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "pages.example.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("holds repeat requests to the configured rate", func(t *testing.T) {
		t.Parallel()

		// 10 req/s leaves 100ms between requests to one host.
		limiter := htmlkithttp.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "pages.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "pages.example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("domains do not slow each other down", func(t *testing.T) {
		t.Parallel()

		limiter := htmlkithttp.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "pages.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "cdn.example.net"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("gives up when the context expires while waiting", func(t *testing.T) {
		t.Parallel()

		// At 1 req/s the second wait would need a full second.
		limiter := htmlkithttp.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "pages.example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		assert.Error(t, limiter.Wait(ctx, "pages.example.com"))
	})

	t.Run("safe under concurrent use", func(t *testing.T) {
		t.Parallel()

		limiter := htmlkithttp.NewDomainLimiter(100)

		var wg sync.WaitGroup
		errs := make([]error, 5)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = limiter.Wait(context.Background(), "pages.example.com")
			}()
		}
		wg.Wait()

		for _, err := range errs {
			assert.NoError(t, err)
		}
	})
}
