// Package htmltomarkdown converts extracted HTML into Markdown for the
// transform pipeline.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/htmlkit"
)

var _ htmlkit.Converter = (*Converter)(nil)

// Converter renders HTML as CommonMark. Tables go through the table
// plugin so grids survive the conversion instead of collapsing to text.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter with the commonmark and table rule
// sets installed.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders html as Markdown. Input that is empty or whitespace
// only is rejected with EINVALID rather than producing an empty document.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", htmlkit.Errorf(htmlkit.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}
