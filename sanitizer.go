package htmlkit

// Sanitizer removes unsafe or unwanted markup from HTML.
type Sanitizer interface {
	// SanitizeHTML strips scripts, event handlers, and other unsafe
	// constructs while preserving document structure.
	SanitizeHTML(html string) string

	// SanitizeText strips all markup, returning plain text.
	SanitizeText(html string) string
}
