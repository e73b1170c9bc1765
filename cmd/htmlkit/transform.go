package main

import (
	"strings"
)

// TransformCmd is the "transform" subcommand.
type TransformCmd struct {
	Input  string `arg:"" help:"HTML file or URL"`
	Output string `arg:"" help:"Output file path"`

	Format   string `default:"markdown" enum:"markdown,text,json" help:"Output format"`
	Main     bool   `help:"Extract the main content region before converting"`
	Sanitize bool   `help:"Strip unsafe markup before converting"`
	Encoding string `help:"Character encoding for file reads and output"`
}

// transformOutput is the JSON shape of a conversion.
type transformOutput struct {
	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown"`
	Source   string `json:"source,omitempty"`
}

// Run executes the transform command.
func (c *TransformCmd) Run(deps *Dependencies) error {
	raw, err := loadInput(deps, c.Input, c.Encoding)
	if err != nil {
		return err
	}

	title := ""
	content := raw
	if c.Main {
		result, err := deps.Extractor.Extract(raw)
		if err != nil {
			return err
		}
		title = result.Title
		content = result.ContentHTML
	}

	if c.Sanitize {
		content = deps.Sanitizer.SanitizeHTML(content)
	}

	var out string
	switch c.Format {
	case "text":
		out = deps.Sanitizer.SanitizeText(content) + "\n"
	case "json":
		if title == "" {
			title = c.documentTitle(deps, raw)
		}
		markdown, err := deps.Converter.Convert(content)
		if err != nil {
			return err
		}
		out, err = encodeJSON(transformOutput{Title: title, Markdown: markdown, Source: c.Input}, true)
		if err != nil {
			return err
		}
	default:
		out, err = deps.Converter.Convert(content)
		if err != nil {
			return err
		}
	}

	return writeOutput(deps, c.Output, out, c.Encoding)
}

// documentTitle parses the raw input just far enough to recover a title
// for the JSON envelope.
func (c *TransformCmd) documentTitle(deps *Dependencies, raw string) string {
	doc, err := deps.Parser.Parse(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	return doc.Title()
}
