// Package readability provides an htmlkit.Extractor backed by the
// go-shiori port of Mozilla's Readability.
package readability

import (
	"strings"

	"github.com/fwojciec/htmlkit"
	"github.com/go-shiori/go-readability"
)

var _ htmlkit.Extractor = (*Extractor)(nil)

// Extractor locates the main article of a page the way browser reader
// modes do, scoring text blocks and discarding the boilerplate around
// them.
type Extractor struct{}

// NewExtractor returns a ready-to-use Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's main content as cleaned HTML together with
// the title Readability detected.
func (e *Extractor) Extract(rawHTML string) (*htmlkit.ExtractResult, error) {
	if rawHTML == "" {
		return nil, htmlkit.Errorf(htmlkit.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.EINVALID, "readability: %v", err)
	}

	return &htmlkit.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
