package main

import (
	"strings"

	"github.com/fwojciec/htmlkit/stats"
)

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Input  string `arg:"" help:"HTML file or URL"`
	Output string `arg:"" help:"Output file path"`

	Format   string `default:"json" enum:"json,txt" help:"Output format"`
	Encoding string `help:"Character encoding for file reads and output"`
}

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	raw, err := loadInput(deps, c.Input, c.Encoding)
	if err != nil {
		return err
	}

	doc, err := deps.Parser.Parse(strings.NewReader(raw))
	if err != nil {
		return err
	}

	sourceURL := ""
	if isURL(c.Input) {
		sourceURL = c.Input
	}

	s, err := stats.Analyze(doc, sourceURL)
	if err != nil {
		return err
	}

	var out string
	switch c.Format {
	case "txt":
		out = stats.FormatText(s)
	default:
		out, err = stats.FormatJSON(s, true)
		if err != nil {
			return err
		}
	}

	return writeOutput(deps, c.Output, out, c.Encoding)
}
