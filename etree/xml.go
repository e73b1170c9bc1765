// Package etree renders parsed document trees as XML.
package etree

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/htmlkit"
)

// FormatXML renders a document tree as an XML document. The tree is
// wrapped in a <document> element carrying the doctype, title and
// charset; below it every node appears under its own tag name with its
// attributes in sorted order.
func FormatXML(tree *htmlkit.DocumentTree, indent bool) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("document")
	if tree.Doctype != "" {
		root.CreateAttr("doctype", tree.Doctype)
	}
	if tree.Title != "" {
		root.CreateAttr("title", tree.Title)
	}
	if tree.Charset != "" {
		root.CreateAttr("charset", tree.Charset)
	}
	if tree.Root != nil {
		appendNode(root, tree.Root)
	}

	if indent {
		doc.Indent(2)
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", htmlkit.Errorf(htmlkit.EINTERNAL, "cannot render XML: %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

func appendNode(parent *etree.Element, n *htmlkit.Node) {
	el := parent.CreateElement(n.Tag)

	names := make([]string, 0, len(n.Attributes))
	for name := range n.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		el.CreateAttr(name, n.Attributes[name])
	}

	if n.Text != "" {
		el.SetText(n.Text)
	}
	for _, child := range n.Children {
		appendNode(el, child)
	}
}
