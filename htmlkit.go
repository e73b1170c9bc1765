// Package htmlkit provides a CLI toolkit for working with HTML documents.
// It retrieves pages over HTTP or through a headless browser, parses them
// into traversable documents, extracts content, computes document
// statistics, compares documents structurally, and reformats them as
// markdown, text, JSON, or XML.
//
// The root package holds only domain types and interfaces, in the style of
// Ben Johnson's Standard Package Layout; each implementation lives in a
// subpackage named for the dependency it wraps (goquery/, rod/, sqlite/).
package htmlkit
