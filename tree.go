package htmlkit

// Node is a serializable snapshot of one element in a parsed document.
type Node struct {
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Text       string            `json:"text,omitempty"`
	Children   []*Node           `json:"children,omitempty"`
}

// DocumentTree is the serializable form of a whole parsed document.
type DocumentTree struct {
	Doctype string `json:"doctype,omitempty"`
	Title   string `json:"title,omitempty"`
	Charset string `json:"charset,omitempty"`
	Root    *Node  `json:"root"`
}

// TreeOf builds the serializable tree snapshot of a document.
func TreeOf(doc Document) *DocumentTree {
	return &DocumentTree{
		Doctype: doc.Doctype(),
		Title:   doc.Title(),
		Charset: doc.Charset(),
		Root:    nodeOf(doc.Root()),
	}
}

func nodeOf(el Element) *Node {
	if el == nil {
		return nil
	}
	n := &Node{Tag: el.Tag()}
	if attrs := el.Attrs(); len(attrs) > 0 {
		n.Attributes = make(map[string]string, len(attrs))
		for _, a := range attrs {
			n.Attributes[a.Name] = a.Value
		}
	}
	if text := el.OwnText(); text != "" {
		n.Text = text
	}
	for _, child := range el.Children() {
		n.Children = append(n.Children, nodeOf(child))
	}
	return n
}
