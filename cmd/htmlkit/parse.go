package main

import (
	"strings"

	"github.com/fwojciec/htmlkit"
	"github.com/fwojciec/htmlkit/etree"
)

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Input    string `arg:"" help:"HTML file or URL"`
	Output   string `arg:"" help:"Output file path"`
	Format   string `default:"json" enum:"json,xml" help:"Output format"`
	Indent   bool   `help:"Pretty-print the output"`
	Encoding string `help:"Character encoding for file reads and output"`
}

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	raw, err := loadInput(deps, c.Input, c.Encoding)
	if err != nil {
		return err
	}

	doc, err := deps.Parser.Parse(strings.NewReader(raw))
	if err != nil {
		return err
	}

	tree := htmlkit.TreeOf(doc)

	var out string
	switch c.Format {
	case "xml":
		out, err = etree.FormatXML(tree, c.Indent)
	default:
		out, err = encodeJSON(tree, c.Indent)
	}
	if err != nil {
		return err
	}

	return writeOutput(deps, c.Output, out, c.Encoding)
}
