package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/htmlkit"
)

// compareVisual approximates rendering differences from markup signals:
// style blocks, stylesheet links, inline style attributes, and class
// usage. True visual diffing would need a renderer; these are the signals
// most likely to correlate with visible appearance.
func compareVisual(s1, s2 scopedDocument) []htmlkit.Difference {
	var diffs []htmlkit.Difference
	d1, d2 := s1.doc, s2.doc

	styles1, styles2 := d1.ElementsByTag("style"), d2.ElementsByTag("style")
	if len(styles1) != len(styles2) {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffStyleCount,
			Description: "Different number of style blocks",
			Details:     fmt.Sprintf("%d vs %d", len(styles1), len(styles2)),
		})
	} else {
		for i := range styles1 {
			if styles1[i].Text() != styles2[i].Text() {
				diffs = append(diffs, htmlkit.Difference{
					Type:        htmlkit.DiffStyleContent,
					Description: fmt.Sprintf("Style block %d has different content", i+1),
				})
			}
		}
	}

	sheets1, sheets2 := stylesheetHrefs(d1), stylesheetHrefs(d2)
	if !equalStrings(sheets1, sheets2) {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffStylesheetDifference,
			Description: "Documents reference different stylesheets",
			Details:     fmt.Sprintf("[%s] vs [%s]", strings.Join(sheets1, ", "), strings.Join(sheets2, ", ")),
		})
	}

	if n1, n2 := countInlineStyles(d1), countInlineStyles(d2); n1 != n2 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffInlineStyleCount,
			Description: "Different number of elements with inline styles",
			Details:     fmt.Sprintf("%d vs %d", n1, n2),
		})
	}

	classes1, classes2 := classCounts(d1), classCounts(d2)
	diffs = append(diffs, setDifferences(htmlkit.DiffUniqueClasses, "classes", keys(classes1), keys(classes2))...)

	for _, class := range sortedKeys(classes1, classes2) {
		n1, ok1 := classes1[class]
		n2, ok2 := classes2[class]
		if !ok1 || !ok2 || n1 == n2 {
			continue
		}
		diffs = append(diffs, htmlkit.Difference{
			Type:        htmlkit.DiffClassUsage,
			Description: fmt.Sprintf("Class %q is used a different number of times", class),
			Details:     fmt.Sprintf("%d vs %d", n1, n2),
		})
	}

	return diffs
}

// stylesheetHrefs returns the sorted set of external stylesheet hrefs.
func stylesheetHrefs(doc htmlkit.Document) []string {
	var out []string
	seen := make(map[string]bool)
	for _, el := range doc.ElementsByTag("link") {
		if !isStylesheet(el) {
			continue
		}
		if href, ok := el.Attr("href"); ok && href != "" && !seen[href] {
			seen[href] = true
			out = append(out, href)
		}
	}
	sort.Strings(out)
	return out
}

func countInlineStyles(doc htmlkit.Document) int {
	count := 0
	for _, el := range doc.Elements() {
		if _, ok := el.Attr("style"); ok {
			count++
		}
	}
	return count
}

// classCounts counts how many times each class token is used across the
// whole document.
func classCounts(doc htmlkit.Document) map[string]int {
	counts := make(map[string]int)
	for _, el := range doc.Elements() {
		for _, class := range el.Classes() {
			counts[class]++
		}
	}
	return counts
}
