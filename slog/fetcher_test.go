package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/htmlkit/mock"
	kitslog "github.com/fwojciec/htmlkit/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLogCapture returns a text-format logger and the buffer it writes to.
func newLogCapture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("records url, size, and timing of each fetch", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogCapture()
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<p>cached copy</p>", nil
			},
		}

		html, err := kitslog.NewLoggingFetcher(inner, logger).
			Fetch(context.Background(), "https://example.org/pricing")
		require.NoError(t, err)
		assert.Equal(t, "<p>cached copy</p>", html)

		logged := buf.String()
		assert.Contains(t, logged, "fetch")
		assert.Contains(t, logged, "url=https://example.org/pricing")
		assert.Contains(t, logged, "bytes=18")
		assert.Contains(t, logged, "duration=")
	})

	t.Run("records the failure alongside the url", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogCapture()
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("dns lookup failed")
			},
		}

		_, err := kitslog.NewLoggingFetcher(inner, logger).
			Fetch(context.Background(), "https://example.org/pricing")
		require.Error(t, err)

		logged := buf.String()
		assert.Contains(t, logged, "url=https://example.org/pricing")
		assert.Contains(t, logged, `err="dns lookup failed"`)
	})

	t.Run("close passes through untouched", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogCapture()
		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		require.NoError(t, kitslog.NewLoggingFetcher(inner, logger).Close())
		assert.True(t, closed)
		assert.Empty(t, buf.String())
	})
}
