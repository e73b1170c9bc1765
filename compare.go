package htmlkit

// Mode selects a comparison strategy.
type Mode string

// Comparison modes.
const (
	// ModeStructure compares doctype, title, charset, per-tag element
	// counts, DOM depth, and head-section aggregates.
	ModeStructure Mode = "structure"

	// ModeContent compares visible text, link and image sets, and
	// attribute differences. This is the default mode.
	ModeContent Mode = "content"

	// ModeVisual approximates rendering differences from markup signals:
	// style blocks, stylesheet links, inline styles, and class usage.
	ModeVisual Mode = "visual"
)

// ParseMode converts a mode string into a Mode. An empty string selects
// ModeContent; anything else outside the enumerated values is rejected
// with EINVALID.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeStructure, ModeContent, ModeVisual:
		return m, nil
	case "":
		return ModeContent, nil
	default:
		return "", Errorf(EINVALID, "unknown comparison mode %q", s)
	}
}

// ComparisonOptions configures a document comparison.
type ComparisonOptions struct {
	// Mode selects the comparison strategy. Empty defaults to ModeContent.
	Mode Mode `json:"mode"`

	// Selector restricts the comparison to elements matching a CSS
	// selector. Empty compares whole documents.
	Selector string `json:"selector,omitempty"`

	// IgnoreAttributes lists attribute names excluded from all
	// attribute-keyed comparisons.
	IgnoreAttributes []string `json:"ignoreAttributes,omitempty"`

	// Encoding names the character encoding used to read input files.
	// Empty defaults to UTF-8.
	Encoding string `json:"encoding,omitempty"`
}

// WithDefaults returns a copy of the options with zero values replaced by
// their defaults.
func (o ComparisonOptions) WithDefaults() ComparisonOptions {
	if o.Mode == "" {
		o.Mode = ModeContent
	}
	if o.Encoding == "" {
		o.Encoding = "UTF-8"
	}
	return o
}

// Validate returns an error if the options contain invalid fields.
func (o ComparisonOptions) Validate() error {
	switch o.Mode {
	case ModeStructure, ModeContent, ModeVisual:
		return nil
	default:
		return Errorf(EINVALID, "unknown comparison mode %q", o.Mode)
	}
}

// DifferenceType tags a difference with its kind. The set of types is
// closed; each comparison strategy emits a fixed subset.
type DifferenceType string

// Difference types emitted by the structure strategy.
const (
	DiffDocType         DifferenceType = "DocType"
	DiffTitle           DifferenceType = "Title"
	DiffCharset         DifferenceType = "Charset"
	DiffElementCount    DifferenceType = "ElementCount"
	DiffDOMDepth        DifferenceType = "DOMDepth"
	DiffMetaCount       DifferenceType = "MetaCount"
	DiffStylesheetCount DifferenceType = "StylesheetCount"
	DiffScriptCount     DifferenceType = "ScriptCount"
)

// Difference types emitted by the content strategy.
const (
	DiffTextContent         DifferenceType = "TextContent"
	DiffLinkCount           DifferenceType = "LinkCount"
	DiffUniqueLinks         DifferenceType = "UniqueLinks"
	DiffImageCount          DifferenceType = "ImageCount"
	DiffUniqueImages        DifferenceType = "UniqueImages"
	DiffUniqueAttributes    DifferenceType = "UniqueAttributes"
	DiffMissingElement      DifferenceType = "MissingElement"
	DiffAddedElement        DifferenceType = "AddedElement"
	DiffAttributeDifference DifferenceType = "AttributeDifference"
	DiffTextDifference      DifferenceType = "TextDifference"
)

// Difference types emitted by the visual strategy.
const (
	DiffStyleCount           DifferenceType = "StyleCount"
	DiffStyleContent         DifferenceType = "StyleContent"
	DiffStylesheetDifference DifferenceType = "StylesheetDifference"
	DiffInlineStyleCount     DifferenceType = "InlineStyleCount"
	DiffUniqueClasses        DifferenceType = "UniqueClasses"
	DiffClassUsage           DifferenceType = "ClassUsage"
)

// Difference is one reported discrepancy between two documents.
type Difference struct {
	// Type is the difference kind.
	Type DifferenceType `json:"type"`

	// Description is a human-readable one-line summary.
	Description string `json:"description"`

	// Location is a CSS-like locator for the offending element,
	// when the difference is anchored to one.
	Location string `json:"location,omitempty"`

	// Details elaborates with counts, value pairs, or truncated lists.
	Details string `json:"details,omitempty"`
}

// Summary aggregates a difference list.
type Summary struct {
	TotalDifferences  int                    `json:"totalDifferences"`
	DifferencesByType map[DifferenceType]int `json:"differencesByType"`
}

// ComparisonResult is the full outcome of one comparison.
type ComparisonResult struct {
	// Comparison echoes the effective options the comparison ran with.
	Comparison ComparisonOptions `json:"comparison"`

	// Differences lists discrepancies in strategy emission order.
	Differences []Difference `json:"differences"`

	// Summary aggregates the differences by count and type.
	Summary Summary `json:"summary"`
}

// Summarize computes summary counts for a difference list. Types that do
// not appear in the list are omitted from the per-type counts.
func Summarize(diffs []Difference) Summary {
	byType := make(map[DifferenceType]int)
	for _, d := range diffs {
		byType[d.Type]++
	}
	return Summary{
		TotalDifferences:  len(diffs),
		DifferencesByType: byType,
	}
}
