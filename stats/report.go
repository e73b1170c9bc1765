package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/htmlkit"
)

// FormatJSON renders document statistics as JSON, preserving non-ASCII
// text verbatim. When indent is true the output is pretty-printed with
// two-space indentation.
func FormatJSON(s *htmlkit.DocumentStats, indent bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s); err != nil {
		return "", htmlkit.Errorf(htmlkit.EINTERNAL, "failed to encode statistics: %v", err)
	}
	return buf.String(), nil
}

// FormatText renders document statistics as a human-readable report. At
// most the ten most frequent tags are listed; ties break alphabetically.
func FormatText(s *htmlkit.DocumentStats) string {
	var sb strings.Builder

	sb.WriteString("HTML Document Statistics\n")
	sb.WriteString("========================\n\n")

	sb.WriteString("Document\n")
	sb.WriteString("--------\n")
	fmt.Fprintf(&sb, "Title: %s\n", s.Title)
	fmt.Fprintf(&sb, "Doctype: %s\n", s.Doctype)
	fmt.Fprintf(&sb, "Charset: %s\n", s.Charset)
	if s.SourceURL != "" {
		fmt.Fprintf(&sb, "Source: %s\n", s.SourceURL)
	}
	sb.WriteString("\n")

	sb.WriteString("Elements\n")
	sb.WriteString("--------\n")
	fmt.Fprintf(&sb, "Total elements: %d\n", s.ElementCount)
	fmt.Fprintf(&sb, "Max DOM depth: %d\n", s.MaxDepth)
	sb.WriteString("Top tags:\n")
	for _, tc := range topTags(s.ElementsByTag, 10) {
		fmt.Fprintf(&sb, "  %s: %d\n", tc.tag, tc.count)
	}
	if headings := headingLines(s.Headings); len(headings) > 0 {
		sb.WriteString("Headings:\n")
		for _, line := range headings {
			sb.WriteString(line)
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Links\n")
	sb.WriteString("-----\n")
	fmt.Fprintf(&sb, "Total: %d\n", s.Links.Total)
	fmt.Fprintf(&sb, "Internal: %d\n", s.Links.Internal)
	fmt.Fprintf(&sb, "External: %d\n", s.Links.External)
	fmt.Fprintf(&sb, "Unique: %d\n\n", s.Links.Unique)

	sb.WriteString("Images\n")
	sb.WriteString("------\n")
	fmt.Fprintf(&sb, "Total: %d\n", s.Images.Total)
	fmt.Fprintf(&sb, "Unique sources: %d\n\n", s.Images.Unique)

	sb.WriteString("Styling\n")
	sb.WriteString("-------\n")
	fmt.Fprintf(&sb, "Script elements: %d\n", s.Scripts)
	fmt.Fprintf(&sb, "Stylesheets: %d\n", s.Stylesheets)
	fmt.Fprintf(&sb, "Inline styles: %d\n", s.InlineStyles)
	fmt.Fprintf(&sb, "Distinct classes: %d\n\n", s.DistinctClasses)

	sb.WriteString("Text\n")
	sb.WriteString("----\n")
	fmt.Fprintf(&sb, "Length: %d characters\n", s.TextLength)
	fmt.Fprintf(&sb, "Words: %d\n\n", s.WordCount)

	sb.WriteString("Fingerprint\n")
	sb.WriteString("-----------\n")
	fmt.Fprintf(&sb, "Content hash: %s\n", s.ContentHash)

	return sb.String()
}

type tagCount struct {
	tag   string
	count int
}

func topTags(byTag map[string]int, limit int) []tagCount {
	tags := make([]tagCount, 0, len(byTag))
	for tag, count := range byTag {
		tags = append(tags, tagCount{tag: tag, count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].count != tags[j].count {
			return tags[i].count > tags[j].count
		}
		return tags[i].tag < tags[j].tag
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

func headingLines(headings map[string]int) []string {
	var lines []string
	for level := 1; level <= 6; level++ {
		tag := fmt.Sprintf("h%d", level)
		if n := headings[tag]; n > 0 {
			lines = append(lines, fmt.Sprintf("  %s: %d\n", tag, n))
		}
	}
	return lines
}
