package goquery

import (
	"strings"

	"github.com/fwojciec/htmlkit"
	"golang.org/x/net/html"
)

type element struct {
	node *html.Node
}

var _ htmlkit.Element = (*element)(nil)

func (e *element) Tag() string {
	return strings.ToLower(e.node.Data)
}

func (e *element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *element) Attrs() []htmlkit.Attribute {
	if len(e.node.Attr) == 0 {
		return nil
	}
	attrs := make([]htmlkit.Attribute, 0, len(e.node.Attr))
	for _, a := range e.node.Attr {
		attrs = append(attrs, htmlkit.Attribute{Name: a.Key, Value: a.Val})
	}
	return attrs
}

func (e *element) Classes() []string {
	val, ok := e.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(val)
}

func (e *element) Children() []htmlkit.Element {
	var children []htmlkit.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &element{node: c})
		}
	}
	return children
}

func (e *element) OwnText() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return normalizeSpace(sb.String())
}

func (e *element) Text() string {
	return visibleText(e.node)
}

func (e *element) OuterHTML() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, e.node); err != nil {
		return "", htmlkit.Errorf(htmlkit.EINTERNAL, "failed to render element: %v", err)
	}
	return sb.String(), nil
}

// visibleText returns the text of the subtree rooted at n with runs of
// whitespace collapsed to single spaces. Text inside script, style,
// template, and noscript elements below n is excluded; calling this on a
// style or script element itself still returns its own content.
func visibleText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		if node != n && node.Type == html.ElementNode {
			switch node.Data {
			case "script", "style", "template", "noscript":
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return normalizeSpace(sb.String())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
