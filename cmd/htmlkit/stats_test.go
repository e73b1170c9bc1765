package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	main "github.com/fwojciec/htmlkit/cmd/htmlkit"
	"github.com/fwojciec/htmlkit/goquery"
	"github.com/fwojciec/htmlkit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statsFixture = `<!DOCTYPE html>
<html><head><title>Metrics Page</title></head>
<body>
<h1>Heading</h1>
<p>Some body text with <a href="/local">a local link</a> and
<a href="https://other.example.org/page">an external link</a>.</p>
<img src="/logo.png" alt="logo">
</body></html>`

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes indented JSON statistics", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotData []byte
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Parser: goquery.NewParser(),
			Writer: capturingWriter(&gotPath, &gotData),
		}

		cmd := &main.StatsCmd{Input: writeTestFile(t, statsFixture), Output: "stats.json", Format: "json"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "stats.json", gotPath)
		assert.Contains(t, string(gotData), "\n  \"title\"")

		var got struct {
			Title        string `json:"title"`
			SourceURL    string `json:"sourceUrl"`
			ElementCount int    `json:"elementCount"`
			Links        struct {
				Total    int `json:"total"`
				External int `json:"external"`
			} `json:"links"`
		}
		require.NoError(t, json.Unmarshal(gotData, &got))
		assert.Equal(t, "Metrics Page", got.Title)
		assert.Empty(t, got.SourceURL, "file input has no source URL")
		assert.Greater(t, got.ElementCount, 0)
		assert.Equal(t, 2, got.Links.Total)
	})

	t.Run("writes a plain-text report with the txt format", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotData []byte
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Parser: goquery.NewParser(),
			Writer: capturingWriter(&gotPath, &gotData),
		}

		cmd := &main.StatsCmd{Input: writeTestFile(t, statsFixture), Output: "stats.txt", Format: "txt"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, string(gotData), "HTML Document Statistics")
		assert.Contains(t, string(gotData), "Title: Metrics Page")
	})

	t.Run("records the source URL for remote input", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotData []byte
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Parser: goquery.NewParser(),
			Writer: capturingWriter(&gotPath, &gotData),
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, "https://example.com/metrics", url)
					return statsFixture, nil
				},
			},
		}

		cmd := &main.StatsCmd{Input: "https://example.com/metrics", Output: "stats.json", Format: "json"}
		err := cmd.Run(deps)

		require.NoError(t, err)

		var got struct {
			SourceURL string `json:"sourceUrl"`
			Links     struct {
				Internal int `json:"internal"`
				External int `json:"external"`
			} `json:"links"`
		}
		require.NoError(t, json.Unmarshal(gotData, &got))
		assert.Equal(t, "https://example.com/metrics", got.SourceURL)
		assert.Equal(t, 1, got.Links.Internal)
		assert.Equal(t, 1, got.Links.External)
	})
}
