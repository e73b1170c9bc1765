package main

import (
	"strings"

	"github.com/fwojciec/htmlkit"
)

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Input  string `arg:"" help:"HTML file or URL"`
	Output string `arg:"" help:"Output file path"`

	Selector string `xor:"scope" help:"CSS selector naming the elements to extract"`
	Main     bool   `xor:"scope" help:"Extract the main content region (default)"`
	Engine   string `default:"trafilatura" enum:"trafilatura,readability" help:"Main-content extraction engine"`
	Format   string `default:"html" enum:"html,text,json" help:"Output format"`
	Sanitize bool   `help:"Strip unsafe markup from the extracted HTML"`
	Encoding string `help:"Character encoding for file reads and output"`
}

// extractOutput is the JSON shape of an extraction.
type extractOutput struct {
	Title       string `json:"title,omitempty"`
	ContentHTML string `json:"contentHtml"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	raw, err := loadInput(deps, c.Input, c.Encoding)
	if err != nil {
		return err
	}

	var title, content string
	if c.Selector != "" {
		title, content, err = c.extractSelector(deps, raw)
	} else {
		title, content, err = c.extractMain(deps, raw)
	}
	if err != nil {
		return err
	}

	if c.Sanitize {
		content = deps.Sanitizer.SanitizeHTML(content)
	}

	var out string
	switch c.Format {
	case "text":
		out = deps.Sanitizer.SanitizeText(content) + "\n"
	case "json":
		out, err = encodeJSON(extractOutput{Title: title, ContentHTML: content}, true)
		if err != nil {
			return err
		}
	default:
		out = content
	}

	return writeOutput(deps, c.Output, out, c.Encoding)
}

// extractMain runs the configured main-content extraction engine.
func (c *ExtractCmd) extractMain(deps *Dependencies, raw string) (title, content string, err error) {
	result, err := deps.Extractor.Extract(raw)
	if err != nil {
		return "", "", err
	}
	return result.Title, result.ContentHTML, nil
}

// extractSelector returns the serialized markup of every element
// matching the selector, in document order.
func (c *ExtractCmd) extractSelector(deps *Dependencies, raw string) (title, content string, err error) {
	doc, err := deps.Parser.Parse(strings.NewReader(raw))
	if err != nil {
		return "", "", err
	}

	matched, err := doc.Find(c.Selector)
	if err != nil {
		return "", "", err
	}
	if len(matched) == 0 {
		return "", "", htmlkit.Errorf(htmlkit.ENOTFOUND, "no elements match selector %q", c.Selector)
	}

	var sb strings.Builder
	for _, el := range matched {
		markup, err := el.OuterHTML()
		if err != nil {
			return "", "", err
		}
		sb.WriteString(markup)
		sb.WriteString("\n")
	}
	return doc.Title(), sb.String(), nil
}
