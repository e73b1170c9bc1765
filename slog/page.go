package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlkit"
)

// Ensure LoggingPageService implements htmlkit.PageService.
var _ htmlkit.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService and logs cache activity.
type LoggingPageService struct {
	next   htmlkit.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next htmlkit.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// CreatePage delegates to the wrapped service and logs the write.
func (s *LoggingPageService) CreatePage(ctx context.Context, page *htmlkit.CachedPage) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache write",
			"url", page.URL,
			"renderer", page.Renderer,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreatePage(ctx, page)
}

// FindPage delegates to the wrapped service and logs the lookup.
func (s *LoggingPageService) FindPage(ctx context.Context, url, renderer string) (page *htmlkit.CachedPage, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache lookup",
			"url", url,
			"renderer", renderer,
			"hit", err == nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindPage(ctx, url, renderer)
}

// DeletePagesBefore delegates to the wrapped service and logs the prune.
func (s *LoggingPageService) DeletePagesBefore(ctx context.Context, cutoff time.Time) (removed int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache prune",
			"cutoff", cutoff,
			"removed", removed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeletePagesBefore(ctx, cutoff)
}
