package main

import (
	"github.com/fwojciec/htmlkit"
	"github.com/fwojciec/htmlkit/compare"
)

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	File1  string `arg:"" help:"First HTML file or URL"`
	File2  string `arg:"" help:"Second HTML file or URL"`
	Output string `arg:"" help:"Output file path"`

	Mode             string   `default:"content" enum:"structure,content,visual" help:"Comparison mode"`
	Selector         string   `help:"CSS selector restricting the comparison scope"`
	IgnoreAttributes []string `name:"ignore-attributes" help:"Attribute names excluded from attribute comparisons"`
	Format           string   `default:"json" enum:"json,txt" help:"Report format"`
	Encoding         string   `default:"UTF-8" help:"Character encoding for file reads and output"`
}

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	opts := htmlkit.ComparisonOptions{
		Mode:             htmlkit.Mode(c.Mode),
		Selector:         c.Selector,
		IgnoreAttributes: c.IgnoreAttributes,
		Encoding:         c.Encoding,
	}.WithDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}

	html1, html2, err := loadPair(deps, c.File1, c.File2, c.Encoding)
	if err != nil {
		return err
	}

	comparator := compare.New(deps.Parser)
	result, err := comparator.CompareHTML(html1, html2, opts)
	if err != nil {
		return err
	}

	var out string
	switch c.Format {
	case "txt":
		out = compare.FormatText(result)
	default:
		out, err = compare.FormatJSON(result, true)
		if err != nil {
			return err
		}
	}

	return writeOutput(deps, c.Output, out, c.Encoding)
}
