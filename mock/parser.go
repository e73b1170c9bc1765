// Package mock provides function-field mock implementations of the
// htmlkit interfaces for use in tests.
package mock

import (
	"io"

	"github.com/fwojciec/htmlkit"
)

var _ htmlkit.Parser = (*Parser)(nil)

// Parser is a mock implementation of htmlkit.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (htmlkit.Document, error)
}

func (p *Parser) Parse(r io.Reader) (htmlkit.Document, error) {
	return p.ParseFn(r)
}
