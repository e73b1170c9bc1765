package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/fwojciec/htmlkit"
	"github.com/fwojciec/htmlkit/charset"
	"golang.org/x/sync/errgroup"
)

// isURL reports whether the input names a remote document.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// loadInput returns the HTML named by path, which is either a local file
// or an http(s) URL. Local files are decoded from the named encoding;
// remote responses are used as received.
func loadInput(deps *Dependencies, path, encoding string) (string, error) {
	if isURL(path) {
		return deps.Fetcher.Fetch(deps.Ctx, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", htmlkit.Errorf(htmlkit.ENOTFOUND, "file not found: %s", path)
		}
		return "", htmlkit.Errorf(htmlkit.EINVALID, "cannot read %s: %v", path, err)
	}
	return charset.Decode(raw, encoding)
}

// loadPair loads two inputs, fetching concurrently when both are remote.
func loadPair(deps *Dependencies, path1, path2, encoding string) (string, string, error) {
	if isURL(path1) && isURL(path2) {
		var html1, html2 string
		g, ctx := errgroup.WithContext(deps.Ctx)
		g.Go(func() error {
			var err error
			html1, err = deps.Fetcher.Fetch(ctx, path1)
			return err
		})
		g.Go(func() error {
			var err error
			html2, err = deps.Fetcher.Fetch(ctx, path2)
			return err
		})
		if err := g.Wait(); err != nil {
			return "", "", err
		}
		return html1, html2, nil
	}

	html1, err := loadInput(deps, path1, encoding)
	if err != nil {
		return "", "", err
	}
	html2, err := loadInput(deps, path2, encoding)
	if err != nil {
		return "", "", err
	}
	return html1, html2, nil
}

// writeOutput encodes content per the output encoding and writes it to
// path through the atomic writer.
func writeOutput(deps *Dependencies, path, content, encoding string) error {
	data, err := charset.Encode(content, encoding)
	if err != nil {
		return err
	}
	return deps.Writer.WriteFile(deps.Ctx, path, data)
}

// encodeJSON marshals v without escaping HTML-significant characters, so
// markup and non-ASCII text survive into output files verbatim.
func encodeJSON(v any, indent bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return "", htmlkit.Errorf(htmlkit.EINTERNAL, "cannot encode JSON: %v", err)
	}
	return buf.String(), nil
}
