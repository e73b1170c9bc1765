// Package stats computes summary statistics for parsed HTML documents.
package stats

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htmlkit"
)

// Analyze walks a parsed document and returns its statistics. sourceURL,
// when non-empty, is recorded in the result and used to classify links as
// internal or external.
func Analyze(doc htmlkit.Document, sourceURL string) (*htmlkit.DocumentStats, error) {
	raw, err := doc.HTML()
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.ErrorCode(err), "analysis failed: %v", err)
	}

	s := &htmlkit.DocumentStats{
		SourceURL:     sourceURL,
		Title:         doc.Title(),
		Doctype:       doc.Doctype(),
		Charset:       doc.Charset(),
		ElementsByTag: make(map[string]int),
		Headings:      make(map[string]int),
		ContentHash:   fmt.Sprintf("%016x", xxhash.Sum64String(raw)),
	}

	classes := make(map[string]bool)
	for _, el := range doc.Elements() {
		s.ElementCount++
		s.ElementsByTag[el.Tag()]++
		if _, ok := el.Attr("style"); ok {
			s.InlineStyles++
		}
		for _, class := range el.Classes() {
			classes[class] = true
		}
		switch el.Tag() {
		case "script":
			s.Scripts++
		case "link":
			if isStylesheet(el) {
				s.Stylesheets++
			}
		}
	}
	s.DistinctClasses = len(classes)

	for level := 1; level <= 6; level++ {
		tag := fmt.Sprintf("h%d", level)
		s.Headings[tag] = s.ElementsByTag[tag]
	}

	s.Links = linkStats(doc, sourceURL)
	s.Images = imageStats(doc)

	text := doc.Text()
	s.TextLength = utf8.RuneCountInString(text)
	s.WordCount = len(strings.Fields(text))

	s.MaxDepth = htmlkit.MaxDepth(doc.Root())

	return s, nil
}

func linkStats(doc htmlkit.Document, sourceURL string) htmlkit.LinkStats {
	var sourceHost string
	if sourceURL != "" {
		if u, err := url.Parse(sourceURL); err == nil {
			sourceHost = u.Host
		}
	}

	var ls htmlkit.LinkStats
	seen := make(map[string]bool)
	for _, el := range doc.ElementsByTag("a") {
		href, ok := el.Attr("href")
		if !ok {
			continue
		}
		ls.Total++
		if !seen[href] {
			seen[href] = true
			ls.Unique++
		}
		if isExternal(href, sourceHost) {
			ls.External++
		} else {
			ls.Internal++
		}
	}
	return ls
}

// isExternal reports whether href points away from the source host. A
// relative or unparseable href is internal; an absolute one is internal
// only when its host matches the source host.
func isExternal(href, sourceHost string) bool {
	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() {
		return false
	}
	return u.Host == "" || u.Host != sourceHost
}

func imageStats(doc htmlkit.Document) htmlkit.ImageStats {
	var is htmlkit.ImageStats
	seen := make(map[string]bool)
	for _, el := range doc.ElementsByTag("img") {
		is.Total++
		if src, ok := el.Attr("src"); ok && !seen[src] {
			seen[src] = true
			is.Unique++
		}
	}
	return is
}

func isStylesheet(el htmlkit.Element) bool {
	rel, ok := el.Attr("rel")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(rel) {
		if strings.EqualFold(token, "stylesheet") {
			return true
		}
	}
	return false
}
