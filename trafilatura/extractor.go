// Package trafilatura provides the default htmlkit.Extractor, backed by
// the go-trafilatura port of the Python library of the same name.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/htmlkit"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ htmlkit.Extractor = (*Extractor)(nil)

// extractOpts keeps links and images in the extracted markup so a later
// Markdown conversion does not lose them. Fallback extraction handles
// pages the primary algorithm gives up on.
var extractOpts = trafilatura.Options{
	EnableFallback: true,
	IncludeLinks:   true,
	IncludeImages:  true,
}

// Extractor isolates the main content of a page.
type Extractor struct{}

// NewExtractor returns an Extractor with the default options.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML as markup, with the title
// taken from the page metadata.
func (e *Extractor) Extract(rawHTML string) (*htmlkit.ExtractResult, error) {
	if rawHTML == "" {
		return nil, htmlkit.Errorf(htmlkit.EINVALID, "empty HTML input")
	}

	res, err := trafilatura.Extract(strings.NewReader(rawHTML), extractOpts)
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.EINVALID, "trafilatura: %v", err)
	}

	out := &htmlkit.ExtractResult{Title: res.Metadata.Title}
	if res.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, res.ContentNode); err != nil {
			return nil, err
		}
		out.ContentHTML = buf.String()
	}
	return out, nil
}
