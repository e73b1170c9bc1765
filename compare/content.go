package compare

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/htmlkit"
)

// compareContent checks visible text, link and image sets, and attribute
// differences. Link and image targets are compared as sets rather than
// positionally: callers care about which targets differ, not where they
// sit in the document.
func compareContent(s1, s2 scopedDocument, opts htmlkit.ComparisonOptions) []htmlkit.Difference {
	var diffs []htmlkit.Difference
	d1, d2 := s1.doc, s2.doc

	// The details deliberately report only lengths: a full text diff of
	// two documents would dwarf the rest of the report.
	if t1, t2 := d1.Text(), d2.Text(); t1 != t2 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffTextContent,
			Description: "Documents have different text content",
			Details:     fmt.Sprintf("%d vs %d characters", utf8.RuneCountInString(t1), utf8.RuneCountInString(t2)),
		})
	}

	links1, links2 := hrefs(d1), hrefs(d2)
	if len(links1) != len(links2) {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffLinkCount,
			Description: "Different number of links",
			Details:     fmt.Sprintf("%d vs %d", len(links1), len(links2)),
		})
	}
	diffs = append(diffs, setDifferences(htmlkit.DiffUniqueLinks, "links", links1, links2)...)

	imgs1, imgs2 := d1.ElementsByTag("img"), d2.ElementsByTag("img")
	if len(imgs1) != len(imgs2) {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffImageCount,
			Description: "Different number of images",
			Details:     fmt.Sprintf("%d vs %d", len(imgs1), len(imgs2)),
		})
	}
	diffs = append(diffs, setDifferences(htmlkit.DiffUniqueImages, "images", srcs(imgs1), srcs(imgs2))...)

	if opts.Selector != "" {
		ignored := ignoreSet(opts.IgnoreAttributes)
		attrs1 := attributeStrings(d1, ignored)
		attrs2 := attributeStrings(d2, ignored)
		diffs = append(diffs, setDifferences(htmlkit.DiffUniqueAttributes, "attributes", attrs1, attrs2)...)
	}

	switch {
	case s1.shell:
		// Shell documents already hold only the selection; the aggregate
		// checks above cover them.
	case s1.matched != nil:
		diffs = append(diffs, comparePairs(s1.matched, s2.matched, opts)...)
	default:
		diffs = append(diffs, comparePairs(bodyElements(d1), bodyElements(d2), opts)...)
	}

	return diffs
}

// bodyElements returns every element below the body in document order.
func bodyElements(doc htmlkit.Document) []htmlkit.Element {
	body := doc.Body()
	if body == nil {
		return nil
	}
	var out []htmlkit.Element
	var walk func(htmlkit.Element)
	walk = func(el htmlkit.Element) {
		for _, child := range el.Children() {
			out = append(out, child)
			walk(child)
		}
	}
	walk(body)
	return out
}

// hrefs returns the href value of every anchor that carries one, in
// document order, duplicates included.
func hrefs(doc htmlkit.Document) []string {
	var out []string
	for _, el := range doc.ElementsByTag("a") {
		if href, ok := el.Attr("href"); ok {
			out = append(out, href)
		}
	}
	return out
}

// srcs returns the src value of every element that carries one, in
// document order, duplicates included.
func srcs(els []htmlkit.Element) []string {
	var out []string
	for _, el := range els {
		if src, ok := el.Attr("src"); ok {
			out = append(out, src)
		}
	}
	return out
}

// attributeStrings collects one "tag[name=value]" entry per attribute of
// every element below the body, excluding ignored attribute names.
func attributeStrings(doc htmlkit.Document, ignored map[string]bool) []string {
	body := doc.Body()
	if body == nil {
		return nil
	}
	var out []string
	var walk func(htmlkit.Element)
	walk = func(el htmlkit.Element) {
		for _, child := range el.Children() {
			for _, a := range child.Attrs() {
				if ignored[a.Name] {
					continue
				}
				out = append(out, fmt.Sprintf("%s[%s=%s]", child.Tag(), a.Name, a.Value))
			}
			walk(child)
		}
	}
	walk(body)
	return out
}

// comparePairs compares elements pairwise by position. Surplus elements
// on either side are reported as missing or added.
func comparePairs(els1, els2 []htmlkit.Element, opts htmlkit.ComparisonOptions) []htmlkit.Difference {
	var diffs []htmlkit.Difference
	ignored := ignoreSet(opts.IgnoreAttributes)

	n := min(len(els1), len(els2))
	for i := 0; i < n; i++ {
		diffs = append(diffs, comparePair(i, els1[i], els2[i], ignored)...)
	}
	for i := n; i < len(els1); i++ {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffMissingElement,
			Description: fmt.Sprintf("Element %d is missing from the second document", i+1),
			Location:    locationOf(els1[i]),
		})
	}
	for i := n; i < len(els2); i++ {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffAddedElement,
			Description: fmt.Sprintf("Element %d was added in the second document", i+1),
			Location:    locationOf(els2[i]),
		})
	}
	return diffs
}

// comparePair checks one element pair for attribute and text mismatches.
// Text checks use the element's own text so that a change deep in a
// subtree is attributed to the element that contains it, not to every
// ancestor along the way.
func comparePair(index int, e1, e2 htmlkit.Element, ignored map[string]bool) []htmlkit.Difference {
	var diffs []htmlkit.Difference

	a1 := filteredAttrs(e1, ignored)
	a2 := filteredAttrs(e2, ignored)
	if names := differingAttrNames(a1, a2); len(names) > 0 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffAttributeDifference,
			Description: fmt.Sprintf("Element %d has different attributes", index+1),
			Location:    locationOf(e1),
			Details:     joinSorted(names),
		})
	}

	if t1, t2 := e1.OwnText(), e2.OwnText(); t1 != t2 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffTextDifference,
			Description: fmt.Sprintf("Element %d has different text", index+1),
			Location:    locationOf(e1),
			Details:     fmt.Sprintf("%q vs %q", truncate(t1, 60), truncate(t2, 60)),
		})
	}
	return diffs
}

func filteredAttrs(el htmlkit.Element, ignored map[string]bool) map[string]string {
	attrs := make(map[string]string)
	for _, a := range el.Attrs() {
		if !ignored[a.Name] {
			attrs[a.Name] = a.Value
		}
	}
	return attrs
}

// differingAttrNames returns the names whose values differ between the
// two attribute maps, including names present on only one side.
func differingAttrNames(a1, a2 map[string]string) []string {
	var names []string
	for name, v1 := range a1 {
		if v2, ok := a2[name]; !ok || v1 != v2 {
			names = append(names, name)
		}
	}
	for name := range a2 {
		if _, ok := a1[name]; !ok {
			names = append(names, name)
		}
	}
	return names
}
