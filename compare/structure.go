package compare

import (
	"fmt"

	"github.com/fwojciec/htmlkit"
)

// compareStructure checks doctype, title, charset, per-tag element
// counts, DOM depth, and head-section aggregates.
func compareStructure(s1, s2 scopedDocument) []htmlkit.Difference {
	var diffs []htmlkit.Difference
	d1, d2 := s1.doc, s2.doc

	if dt1, dt2 := d1.Doctype(), d2.Doctype(); dt1 != dt2 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffDocType,
			Description: "Documents have different doctypes",
			Details:     fmt.Sprintf("%q vs %q", dt1, dt2),
		})
	}

	if t1, t2 := d1.Title(), d2.Title(); t1 != t2 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffTitle,
			Description: "Documents have different titles",
			Details:     fmt.Sprintf("%q vs %q", t1, t2),
		})
	}

	if c1, c2 := d1.Charset(), d2.Charset(); c1 != c2 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffCharset,
			Description: "Documents declare different character sets",
			Details:     fmt.Sprintf("%q vs %q", c1, c2),
		})
	}

	counts1 := tagCounts(s1)
	counts2 := tagCounts(s2)
	for _, tag := range sortedKeys(counts1, counts2) {
		if counts1[tag] != counts2[tag] {
			diffs = append(diffs, htmlkit.Difference{
				Type:        htmlkit.DiffElementCount,
				Description: fmt.Sprintf("Different number of <%s> elements", tag),
				Details:     fmt.Sprintf("%d vs %d", counts1[tag], counts2[tag]),
			})
		}
	}

	if depth1, depth2 := htmlkit.MaxDepth(d1.Body()), htmlkit.MaxDepth(d2.Body()); depth1 != depth2 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffDOMDepth,
			Description: "Documents have different DOM depth",
			Details:     fmt.Sprintf("%d vs %d", depth1, depth2),
		})
	}

	headChecks := []struct {
		typ   htmlkit.DifferenceType
		desc  string
		match func(htmlkit.Element) bool
	}{
		{htmlkit.DiffMetaCount, "Different number of meta tags in head", isTag("meta")},
		{htmlkit.DiffStylesheetCount, "Different number of stylesheet links in head", isStylesheet},
		{htmlkit.DiffScriptCount, "Different number of scripts in head", isTag("script")},
	}
	for _, check := range headChecks {
		if n1, n2 := countInHead(d1, check.match), countInHead(d2, check.match); n1 != n2 {
			diffs = append(diffs, htmlkit.Difference{
				Type:        check.typ,
				Description: check.desc,
				Details:     fmt.Sprintf("%d vs %d", n1, n2),
			})
		}
	}

	return diffs
}

// tagCounts counts elements by tag name. When a tag selector produced an
// explicit element list the counts cover only the matched elements;
// otherwise they cover the whole scoped document.
func tagCounts(s scopedDocument) map[string]int {
	els := s.matched
	if els == nil {
		els = s.doc.Elements()
	}
	counts := make(map[string]int, len(els))
	for _, el := range els {
		counts[el.Tag()]++
	}
	return counts
}

func countInHead(doc htmlkit.Document, match func(htmlkit.Element) bool) int {
	head := doc.Head()
	if head == nil {
		return 0
	}
	count := 0
	var walk func(htmlkit.Element)
	walk = func(el htmlkit.Element) {
		for _, child := range el.Children() {
			if match(child) {
				count++
			}
			walk(child)
		}
	}
	walk(head)
	return count
}

func isTag(tag string) func(htmlkit.Element) bool {
	return func(el htmlkit.Element) bool {
		return el.Tag() == tag
	}
}
