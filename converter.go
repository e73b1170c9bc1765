package htmlkit

// Converter renders HTML as Markdown. The transform command feeds it
// either a whole document body or the output of an Extractor.
type Converter interface {
	// Convert returns the Markdown rendering of html.
	// Blank input is rejected with EINVALID.
	Convert(html string) (string, error)
}
