package compare

import (
	"strings"

	"github.com/fwojciec/htmlkit"
)

// scopedDocument is one side of a comparison after selector scoping.
type scopedDocument struct {
	// doc is the document the comparison strategies operate on: the
	// original document, or a synthetic shell when scoping rebuilt the
	// side around the selection.
	doc htmlkit.Document

	// matched holds the elements the selector matched in the original
	// document. It is nil when no selector was given and on the shell
	// path, where the shell document itself carries the selection.
	matched []htmlkit.Element

	// shell reports whether doc is a synthetic shell document.
	shell bool
}

// scopeDocuments applies selector scoping to both comparison sides. With
// no selector the originals pass through untouched. ID and class
// selectors (containing '#' or '.') rebuild each side as a shell document
// holding only the matched elements, so whole-document checks cannot leak
// differences from outside the selection. Any other selector records the
// matched element lists but keeps the full originals in scope for the
// aggregate checks.
func (c *Comparator) scopeDocuments(doc1, doc2 htmlkit.Document, selector string) (scopedDocument, scopedDocument, error) {
	s1 := scopedDocument{doc: doc1}
	s2 := scopedDocument{doc: doc2}
	if selector == "" {
		return s1, s2, nil
	}

	m1, err := doc1.Find(selector)
	if err != nil {
		return s1, s2, err
	}
	m2, err := doc2.Find(selector)
	if err != nil {
		return s1, s2, err
	}

	if !strings.ContainsAny(selector, "#.") {
		// A selector that matched nothing still scopes the comparison:
		// the strategies treat a nil matched list as "no selector", so
		// an empty match must stay non-nil.
		if m1 == nil {
			m1 = []htmlkit.Element{}
		}
		if m2 == nil {
			m2 = []htmlkit.Element{}
		}
		s1.matched = m1
		s2.matched = m2
		return s1, s2, nil
	}

	shell1, err := c.buildShell(m1)
	if err != nil {
		return s1, s2, err
	}
	shell2, err := c.buildShell(m2)
	if err != nil {
		return s1, s2, err
	}
	return scopedDocument{doc: shell1, shell: true}, scopedDocument{doc: shell2, shell: true}, nil
}

// buildShell constructs a minimal document whose body holds clones of the
// matched elements, in match order.
func (c *Comparator) buildShell(matched []htmlkit.Element) (htmlkit.Document, error) {
	var sb strings.Builder
	sb.WriteString("<html><head></head><body>")
	for _, el := range matched {
		raw, err := el.OuterHTML()
		if err != nil {
			return nil, err
		}
		sb.WriteString(raw)
	}
	sb.WriteString("</body></html>")
	return c.parser.Parse(strings.NewReader(sb.String()))
}
