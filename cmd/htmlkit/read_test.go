package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/htmlkit"
	main "github.com/fwojciec/htmlkit/cmd/htmlkit"
	"github.com/fwojciec/htmlkit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches the URL and writes its HTML", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotData []byte
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Writer: capturingWriter(&gotPath, &gotData),
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, "https://example.com/docs", url)
					return "<html><body>fetched</body></html>", nil
				},
			},
		}

		cmd := &main.ReadCmd{URL: "https://example.com/docs", Output: "page.html"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "page.html", gotPath)
		assert.Equal(t, "<html><body>fetched</body></html>", string(gotData))
	})

	t.Run("rejects non-URL input", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.ReadCmd{URL: "./local.html", Output: "page.html"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, htmlkit.EINVALID, htmlkit.ErrorCode(err))
	})

	t.Run("propagates fetch errors without writing", func(t *testing.T) {
		t.Parallel()

		written := false
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Writer: &mock.OutputWriter{
				WriteFileFn: func(_ context.Context, _ string, _ []byte) error {
					written = true
					return nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", errors.New("connection refused")
				},
			},
		}

		cmd := &main.ReadCmd{URL: "https://example.com/docs", Output: "page.html"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.False(t, written, "no output should be written on error")
	})
}
