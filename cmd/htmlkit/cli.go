package main

import (
	"context"
	"io"

	"github.com/fwojciec/htmlkit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Parser    htmlkit.Parser
	Fetcher   htmlkit.Fetcher
	Extractor htmlkit.Extractor
	Converter htmlkit.Converter
	Sanitizer htmlkit.Sanitizer
	Writer    htmlkit.OutputWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse     ParseCmd     `cmd:"" help:"Parse HTML into a document tree"`
	Read      ReadCmd      `cmd:"" help:"Fetch a page and save its HTML"`
	Extract   ExtractCmd   `cmd:"" help:"Extract content from an HTML document"`
	Stats     StatsCmd     `cmd:"" help:"Compute document statistics"`
	Compare   CompareCmd   `cmd:"" help:"Compare two HTML documents"`
	Transform TransformCmd `cmd:"" help:"Convert HTML to another format"`

	Verbose bool `short:"v" help:"Enable verbose logging"`
}
