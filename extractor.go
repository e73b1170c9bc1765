package htmlkit

// ExtractResult is what remains of a page once boilerplate is stripped.
type ExtractResult struct {
	// Title as the extractor detected it, usually from page metadata.
	Title string

	// ContentHTML is the main content with navigation, footers,
	// sidebars, and ads removed. Structure inside the content is kept.
	ContentHTML string
}

// Extractor isolates the main content of an HTML page.
type Extractor interface {
	// Extract returns the main content of rawHTML.
	// Implementations reject empty input with EINVALID.
	Extract(rawHTML string) (*ExtractResult, error)
}
