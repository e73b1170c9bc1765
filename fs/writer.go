// Package fs writes command output to the filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/htmlkit"
	"github.com/google/uuid"
)

// Ensure Writer implements htmlkit.OutputWriter at compile time.
var _ htmlkit.OutputWriter = (*Writer)(nil)

// Writer writes output files with atomic replace semantics. Content is
// staged to a uniquely named temp file in the target directory and
// renamed into place, so a failed write never leaves partial output at
// the target path.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile writes data to path, replacing any existing file.
func (w *Writer) WriteFile(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
