// Package goquery implements HTML parsing and selector evaluation using
// the goquery library over the tolerant x/net/html parser.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/htmlkit"
	"golang.org/x/net/html"
)

// Parser implements htmlkit.Parser.
type Parser struct {
	defaultCharset string
}

var _ htmlkit.Parser = (*Parser)(nil)

// Option configures a Parser.
type Option func(*Parser)

// WithDefaultCharset sets the charset reported for documents that do not
// declare one in a meta tag. Defaults to UTF-8.
func WithDefaultCharset(name string) Option {
	return func(p *Parser) {
		p.defaultCharset = name
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{defaultCharset: "UTF-8"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads HTML from r and returns the parsed document. Malformed
// markup is repaired by the underlying parser, never rejected.
func (p *Parser) Parse(r io.Reader) (htmlkit.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.EINVALID, "failed to parse HTML: %v", err)
	}
	return newDocument(doc, p.defaultCharset), nil
}

type document struct {
	doc     *goquery.Document
	doctype string
	charset string
}

var _ htmlkit.Document = (*document)(nil)

func newDocument(doc *goquery.Document, defaultCharset string) *document {
	return &document{
		doc:     doc,
		doctype: findDoctype(doc),
		charset: findCharset(doc, defaultCharset),
	}
}

func (d *document) Doctype() string {
	return d.doctype
}

func (d *document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

func (d *document) Charset() string {
	return d.charset
}

func (d *document) Root() htmlkit.Element {
	return d.first("html")
}

func (d *document) Head() htmlkit.Element {
	return d.first("head")
}

func (d *document) Body() htmlkit.Element {
	return d.first("body")
}

// Find evaluates a CSS selector against the document. The selector is
// compiled explicitly because goquery treats a malformed selector as one
// that matches nothing, and syntax errors must surface to the caller.
func (d *document) Find(selector string) ([]htmlkit.Element, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return elementsOf(d.doc.FindMatcher(matcher)), nil
}

func (d *document) ElementsByTag(tag string) []htmlkit.Element {
	return elementsOf(d.doc.Find(tag))
}

func (d *document) Elements() []htmlkit.Element {
	return elementsOf(d.doc.Find("*"))
}

// Text returns the visible text of the document body. Title and other
// head-only text is not part of the rendered page, so it is excluded.
func (d *document) Text() string {
	body := d.doc.Find("body").First()
	if len(body.Nodes) == 0 {
		return ""
	}
	return visibleText(body.Nodes[0])
}

func (d *document) HTML() (string, error) {
	var sb strings.Builder
	for _, n := range d.doc.Nodes {
		if err := html.Render(&sb, n); err != nil {
			return "", htmlkit.Errorf(htmlkit.EINTERNAL, "failed to render document: %v", err)
		}
	}
	return sb.String(), nil
}

func (d *document) first(tag string) htmlkit.Element {
	sel := d.doc.Find(tag).First()
	if len(sel.Nodes) == 0 {
		return nil
	}
	return &element{node: sel.Nodes[0]}
}

func elementsOf(sel *goquery.Selection) []htmlkit.Element {
	els := make([]htmlkit.Element, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		els = append(els, &element{node: n})
	}
	return els
}

func findDoctype(doc *goquery.Document) string {
	if len(doc.Nodes) == 0 {
		return ""
	}
	for n := doc.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.DoctypeNode {
			return doctypeString(n)
		}
	}
	return ""
}

// doctypeString renders a doctype node as a declaration name plus any
// public and system identifiers, so "<!DOCTYPE html>" yields "html" and
// legacy doctypes remain distinguishable from HTML5.
func doctypeString(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			sb.WriteString(` PUBLIC "` + a.Val + `"`)
		case "system":
			sb.WriteString(` "` + a.Val + `"`)
		}
	}
	return sb.String()
}

func findCharset(doc *goquery.Document, fallback string) string {
	if v, ok := doc.Find("meta[charset]").First().Attr("charset"); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	var found string
	doc.Find("meta[http-equiv]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		equiv, _ := sel.Attr("http-equiv")
		if !strings.EqualFold(equiv, "Content-Type") {
			return true
		}
		content, _ := sel.Attr("content")
		if cs := charsetFromContentType(content); cs != "" {
			found = cs
			return false
		}
		return true
	})
	if found != "" {
		return found
	}
	return fallback
}

// charsetFromContentType extracts the charset parameter from a
// Content-Type value like "text/html; charset=utf-8". The value is
// returned as authored.
func charsetFromContentType(s string) string {
	const prefix = "charset="
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if len(part) > len(prefix) && strings.EqualFold(part[:len(prefix)], prefix) {
			return strings.Trim(strings.TrimSpace(part[len(prefix):]), `"'`)
		}
	}
	return ""
}
