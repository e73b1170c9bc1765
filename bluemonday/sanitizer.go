// Package bluemonday sanitizes HTML using the bluemonday library.
package bluemonday

import (
	"html"
	"strings"

	"github.com/fwojciec/htmlkit"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements htmlkit.Sanitizer at compile time.
var _ htmlkit.Sanitizer = (*Sanitizer)(nil)

// Sanitizer removes unsafe markup from HTML. It applies a permissive
// policy for HTML output and a strict policy for plain text output.
type Sanitizer struct {
	html *bluemonday.Policy
	text *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		html: bluemonday.UGCPolicy(),
		text: bluemonday.StrictPolicy(),
	}
}

// SanitizeHTML strips scripts, event handlers, and other unsafe
// constructs while keeping the document's content markup.
func (s *Sanitizer) SanitizeHTML(rawHTML string) string {
	return s.html.Sanitize(rawHTML)
}

// SanitizeText strips all markup and returns the remaining text with
// HTML entities decoded.
func (s *Sanitizer) SanitizeText(rawHTML string) string {
	return strings.TrimSpace(html.UnescapeString(s.text.Sanitize(rawHTML)))
}
