package mock

import "github.com/fwojciec/htmlkit"

var _ htmlkit.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of htmlkit.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*htmlkit.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*htmlkit.ExtractResult, error) {
	return e.ExtractFn(html)
}
