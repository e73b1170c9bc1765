package mock

import "github.com/fwojciec/htmlkit"

var _ htmlkit.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of htmlkit.Sanitizer.
type Sanitizer struct {
	SanitizeHTMLFn func(html string) string
	SanitizeTextFn func(html string) string
}

func (s *Sanitizer) SanitizeHTML(html string) string {
	return s.SanitizeHTMLFn(html)
}

func (s *Sanitizer) SanitizeText(html string) string {
	return s.SanitizeTextFn(html)
}
