package compare

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/htmlkit"
)

// setDifferences emits one difference per side whose values include
// entries absent from the other side. Listed examples are sorted and
// truncated to five with an ellipsis marker.
func setDifferences(typ htmlkit.DifferenceType, noun string, vals1, vals2 []string) []htmlkit.Difference {
	only1 := missingFrom(vals1, vals2)
	only2 := missingFrom(vals2, vals1)

	var diffs []htmlkit.Difference
	if len(only1) > 0 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        typ,
			Description: fmt.Sprintf("First document has %d %s not in second", len(only1), noun),
			Details:     truncateList(only1, 5),
		})
	}
	if len(only2) > 0 {
		diffs = append(diffs, htmlkit.Difference{
			Type:        typ,
			Description: fmt.Sprintf("Second document has %d %s not in first", len(only2), noun),
			Details:     truncateList(only2, 5),
		})
	}
	return diffs
}

// missingFrom returns the sorted unique values of vals that do not occur
// in other.
func missingFrom(vals, other []string) []string {
	in := make(map[string]bool, len(other))
	for _, v := range other {
		in[v] = true
	}
	seen := make(map[string]bool, len(vals))
	var out []string
	for _, v := range vals {
		if !in[v] && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func truncateList(vals []string, max int) string {
	if len(vals) <= max {
		return strings.Join(vals, ", ")
	}
	return strings.Join(vals[:max], ", ") + ", ..."
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}

// locationOf builds a CSS-like locator for an element: "#id" when the
// element has an id, otherwise the tag name joined with its class tokens,
// otherwise the bare tag name.
func locationOf(el htmlkit.Element) string {
	if id, ok := el.Attr("id"); ok && id != "" {
		return "#" + id
	}
	loc := el.Tag()
	for _, class := range el.Classes() {
		loc += "." + class
	}
	return loc
}

func ignoreSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func isStylesheet(el htmlkit.Element) bool {
	if el.Tag() != "link" {
		return false
	}
	rel, _ := el.Attr("rel")
	for _, token := range strings.Fields(rel) {
		if strings.EqualFold(token, "stylesheet") {
			return true
		}
	}
	return false
}

// sortedKeys returns the sorted union of the keys of both maps.
func sortedKeys(m1, m2 map[string]int) []string {
	out := make([]string, 0, len(m1)+len(m2))
	for k := range m1 {
		out = append(out, k)
	}
	for k := range m2 {
		if _, ok := m1[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func joinSorted(vals []string) string {
	sort.Strings(vals)
	return strings.Join(vals, ", ")
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
