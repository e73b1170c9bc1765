// Package compare implements structural, content, and visual comparison
// of parsed HTML documents, along with JSON and text rendering of the
// comparison results.
package compare

import (
	"os"
	"strings"

	"github.com/fwojciec/htmlkit"
	"github.com/fwojciec/htmlkit/charset"
)

// Comparator compares two HTML documents and reports typed differences.
// A Comparator is stateless apart from its parser and safe for concurrent
// use; every comparison owns its documents exclusively.
type Comparator struct {
	parser htmlkit.Parser
}

// New creates a Comparator. The parser is used by the file-based entry
// points and for shell document construction during selector scoping.
func New(parser htmlkit.Parser) *Comparator {
	return &Comparator{parser: parser}
}

// Compare computes the differences between two parsed documents under the
// given options. Either a full result is produced or an error is
// returned; there is no partial-success mode.
func (c *Comparator) Compare(doc1, doc2 htmlkit.Document, opts htmlkit.ComparisonOptions) (*htmlkit.ComparisonResult, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s1, s2, err := c.scopeDocuments(doc1, doc2, opts.Selector)
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.ErrorCode(err), "comparison failed: %v", err)
	}

	var diffs []htmlkit.Difference
	switch opts.Mode {
	case htmlkit.ModeStructure:
		diffs = compareStructure(s1, s2)
	case htmlkit.ModeContent:
		diffs = compareContent(s1, s2, opts)
	case htmlkit.ModeVisual:
		diffs = compareVisual(s1, s2)
	}

	if diffs == nil {
		diffs = []htmlkit.Difference{}
	}
	return &htmlkit.ComparisonResult{
		Comparison:  opts,
		Differences: diffs,
		Summary:     htmlkit.Summarize(diffs),
	}, nil
}

// CompareHTML parses two HTML strings and compares the resulting
// documents.
func (c *Comparator) CompareHTML(html1, html2 string, opts htmlkit.ComparisonOptions) (*htmlkit.ComparisonResult, error) {
	doc1, err := c.parser.Parse(strings.NewReader(html1))
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.ErrorCode(err), "comparison failed: %v", err)
	}
	doc2, err := c.parser.Parse(strings.NewReader(html2))
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.ErrorCode(err), "comparison failed: %v", err)
	}
	return c.Compare(doc1, doc2, opts)
}

// CompareFiles reads two HTML files using the encoding named in the
// options, parses them, and compares the documents.
func (c *Comparator) CompareFiles(path1, path2 string, opts htmlkit.ComparisonOptions) (*htmlkit.ComparisonResult, error) {
	opts = opts.WithDefaults()
	html1, err := readFile(path1, opts.Encoding)
	if err != nil {
		return nil, err
	}
	html2, err := readFile(path2, opts.Encoding)
	if err != nil {
		return nil, err
	}
	return c.CompareHTML(html1, html2, opts)
}

func readFile(path, encoding string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", htmlkit.Errorf(htmlkit.ENOTFOUND, "file not found: %s", path)
		}
		return "", htmlkit.Errorf(htmlkit.EINVALID, "cannot read %s: %v", path, err)
	}
	return charset.Decode(raw, encoding)
}
