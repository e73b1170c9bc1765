package main

import (
	"time"

	"github.com/fwojciec/htmlkit"
)

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL    string `arg:"" help:"Page URL to fetch"`
	Output string `arg:"" help:"Output file path"`

	Render     bool          `help:"Render the page in a headless browser before reading"`
	WaitStable time.Duration `help:"Wait for the rendered page to stop changing (with --render)"`
	Timeout    time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Cache      bool          `help:"Cache fetched pages (path from HTMLKIT_CACHE)"`
}

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	if !isURL(c.URL) {
		return htmlkit.Errorf(htmlkit.EINVALID, "read requires an http(s) URL, got %q", c.URL)
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	return writeOutput(deps, c.Output, html, "")
}
