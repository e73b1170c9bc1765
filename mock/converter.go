package mock

import "github.com/fwojciec/htmlkit"

var _ htmlkit.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmlkit.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
