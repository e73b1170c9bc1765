package htmlkit

import "context"

// OutputWriter persists finished command output.
type OutputWriter interface {
	// WriteFile writes data to path, replacing any existing file. The
	// write is atomic: path never holds partial output.
	WriteFile(ctx context.Context, path string, data []byte) error
}
