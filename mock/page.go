package mock

import (
	"context"
	"time"

	"github.com/fwojciec/htmlkit"
)

var _ htmlkit.PageService = (*PageService)(nil)

// PageService is a mock implementation of htmlkit.PageService.
type PageService struct {
	CreatePageFn        func(ctx context.Context, page *htmlkit.CachedPage) error
	FindPageFn          func(ctx context.Context, url, renderer string) (*htmlkit.CachedPage, error)
	DeletePagesBeforeFn func(ctx context.Context, cutoff time.Time) (int, error)
}

func (s *PageService) CreatePage(ctx context.Context, page *htmlkit.CachedPage) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPage(ctx context.Context, url, renderer string) (*htmlkit.CachedPage, error) {
	return s.FindPageFn(ctx, url, renderer)
}

func (s *PageService) DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return s.DeletePagesBeforeFn(ctx, cutoff)
}
