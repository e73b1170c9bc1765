// Package charset resolves character encoding names and converts text
// between declared encodings and UTF-8 using the WHATWG encoding index.
package charset

import (
	"bytes"
	"io"

	"github.com/fwojciec/htmlkit"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Resolve returns the encoding for a charset name. An empty name selects
// UTF-8. Returns EUNSUPPORTED for names the encoding index does not know.
func Resolve(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.EUNSUPPORTED, "unsupported encoding %q", name)
	}
	return enc, nil
}

// NewReader wraps r so that reads yield UTF-8 text decoded from the named
// encoding. UTF-8 input is passed through unchanged.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Decode converts raw bytes in the named encoding to a UTF-8 string.
func Decode(raw []byte, name string) (string, error) {
	r, err := NewReader(bytes.NewReader(raw), name)
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", htmlkit.Errorf(htmlkit.EINVALID, "cannot decode input as %s: %v", name, err)
	}
	return string(out), nil
}

// Encode converts a UTF-8 string to bytes in the named encoding. Returns
// EINVALID if the text contains characters the target encoding cannot
// represent.
func Encode(s string, name string) ([]byte, error) {
	enc, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return []byte(s), nil
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, htmlkit.Errorf(htmlkit.EINVALID, "cannot encode output as %s: %v", name, err)
	}
	return out, nil
}
