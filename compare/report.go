package compare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/htmlkit"
)

// FormatJSON renders a comparison result as JSON. Non-ASCII text is
// preserved verbatim rather than escaped to \u sequences, so round-
// tripping through a JSON parser reproduces the original strings exactly.
// When indent is true the output is pretty-printed with two-space
// indentation.
func FormatJSON(result *htmlkit.ComparisonResult, indent bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return "", htmlkit.Errorf(htmlkit.EINTERNAL, "failed to encode result: %v", err)
	}
	return buf.String(), nil
}

// FormatText renders a comparison result as a human-readable report with
// a fixed section order: header, comparison details, summary, then one
// entry per difference.
func FormatText(result *htmlkit.ComparisonResult) string {
	var sb strings.Builder

	sb.WriteString("HTML Comparison Report\n")
	sb.WriteString("======================\n\n")

	opts := result.Comparison
	sb.WriteString("Comparison Details\n")
	sb.WriteString("------------------\n")
	fmt.Fprintf(&sb, "Mode: %s\n", opts.Mode)
	selector := opts.Selector
	if selector == "" {
		selector = "all elements"
	}
	fmt.Fprintf(&sb, "Selector: %s\n", selector)
	ignored := "none"
	if len(opts.IgnoreAttributes) > 0 {
		ignored = strings.Join(opts.IgnoreAttributes, ", ")
	}
	fmt.Fprintf(&sb, "Ignored attributes: %s\n\n", ignored)

	sb.WriteString("Summary\n")
	sb.WriteString("-------\n")
	fmt.Fprintf(&sb, "Total differences: %d\n", result.Summary.TotalDifferences)
	for _, typ := range sortedTypes(result.Summary.DifferencesByType) {
		fmt.Fprintf(&sb, "%s: %d\n", typ, result.Summary.DifferencesByType[typ])
	}
	sb.WriteString("\n")

	sb.WriteString("Differences\n")
	sb.WriteString("-----------\n")
	for _, d := range result.Differences {
		fmt.Fprintf(&sb, "- %s: %s\n", d.Type, d.Description)
		if d.Location != "" {
			fmt.Fprintf(&sb, "  Location: %s\n", d.Location)
		}
		if d.Details != "" {
			fmt.Fprintf(&sb, "  Details: %s\n", d.Details)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func sortedTypes(byType map[htmlkit.DifferenceType]int) []htmlkit.DifferenceType {
	types := make([]htmlkit.DifferenceType, 0, len(byType))
	for typ := range byType {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
