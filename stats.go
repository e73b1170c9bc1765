package htmlkit

// DocumentStats summarizes a parsed HTML document: what it contains, how
// deeply it nests, and a fingerprint of its serialized form.
type DocumentStats struct {
	SourceURL       string         `json:"sourceUrl,omitempty"`
	Title           string         `json:"title"`
	Doctype         string         `json:"doctype"`
	Charset         string         `json:"charset"`
	ElementCount    int            `json:"elementCount"`
	ElementsByTag   map[string]int `json:"elementsByTag"`
	Headings        map[string]int `json:"headings"`
	Links           LinkStats      `json:"links"`
	Images          ImageStats     `json:"images"`
	Scripts         int            `json:"scripts"`
	Stylesheets     int            `json:"stylesheets"`
	InlineStyles    int            `json:"inlineStyles"`
	DistinctClasses int            `json:"distinctClasses"`
	TextLength      int            `json:"textLength"`
	WordCount       int            `json:"wordCount"`
	MaxDepth        int            `json:"maxDepth"`
	ContentHash     string         `json:"contentHash"`
}

// LinkStats breaks anchors down by where they point. Internal links are
// relative or share the source host; external links leave it. Without a
// source URL every absolute link counts as external.
type LinkStats struct {
	Total    int `json:"total"`
	Internal int `json:"internal"`
	External int `json:"external"`
	Unique   int `json:"unique"`
}

type ImageStats struct {
	Total  int `json:"total"`
	Unique int `json:"unique"`
}
