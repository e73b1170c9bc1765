// Package slog provides logging decorators for htmlkit services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlkit"
)

// Ensure LoggingFetcher implements htmlkit.Fetcher.
var _ htmlkit.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs each fetch.
type LoggingFetcher struct {
	next   htmlkit.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher decorates next so every fetch is logged to logger.
func NewLoggingFetcher(next htmlkit.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close closes the underlying fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
