package htmlkit

import "io"

// Attribute is a single attribute name/value pair as authored on an element.
// Names are case-sensitive as written in the source markup.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Element represents a node in a parsed HTML document.
type Element interface {
	// Tag returns the lowercase tag name.
	Tag() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Attrs returns all attributes in the order they were authored.
	Attrs() []Attribute

	// Classes returns the whitespace-split tokens of the class attribute.
	Classes() []string

	// Children returns the child elements in document order.
	// Text nodes are not included; use OwnText or Text for those.
	Children() []Element

	// OwnText returns the visible text directly inside the element,
	// excluding text from descendant elements, with runs of whitespace
	// collapsed to single spaces.
	OwnText() string

	// Text returns the visible text of the element and all descendants,
	// with runs of whitespace collapsed to single spaces.
	Text() string

	// OuterHTML returns the serialized markup of the element,
	// including its own tags.
	OuterHTML() (string, error)
}

// Document represents a parsed HTML document.
// Documents are immutable once parsed; selector scoping during comparison
// builds new documents rather than modifying existing ones.
type Document interface {
	// Doctype returns the declared document type name (e.g. "html"),
	// or an empty string when the document has no doctype declaration.
	Doctype() string

	// Title returns the content of the title element.
	Title() string

	// Charset returns the character set the document declares via meta
	// tags, falling back to the encoding it was decoded with.
	Charset() string

	// Root returns the root html element.
	Root() Element

	// Head returns the head element.
	Head() Element

	// Body returns the body element.
	Body() Element

	// Find evaluates a CSS selector and returns matching elements in
	// document order. Returns EINVALID if the selector cannot be parsed.
	Find(selector string) ([]Element, error)

	// ElementsByTag returns all elements with the given tag name in
	// document order.
	ElementsByTag(tag string) []Element

	// Elements returns every element in the document in document order.
	Elements() []Element

	// Text returns the visible text of the whole document.
	Text() string

	// HTML returns the serialized markup of the whole document.
	HTML() (string, error)
}

// Parser parses HTML into a Document. Parsers are tolerant: malformed
// markup is repaired rather than rejected, so Parse fails only on
// unreadable input.
type Parser interface {
	Parse(r io.Reader) (Document, error)
}

// MaxDepth returns the depth of the element tree rooted at el.
// A leaf element has depth 1; a nil element has depth 0.
func MaxDepth(el Element) int {
	if el == nil {
		return 0
	}
	depth := 0
	for _, child := range el.Children() {
		if d := MaxDepth(child); d > depth {
			depth = d
		}
	}
	return depth + 1
}
