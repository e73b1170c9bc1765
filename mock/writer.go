package mock

import (
	"context"

	"github.com/fwojciec/htmlkit"
)

// Ensure OutputWriter implements htmlkit.OutputWriter at compile time.
var _ htmlkit.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of htmlkit.OutputWriter.
type OutputWriter struct {
	WriteFileFn func(ctx context.Context, path string, data []byte) error
}

func (w *OutputWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	return w.WriteFileFn(ctx, path, data)
}
