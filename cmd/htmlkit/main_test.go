package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/htmlkit/cmd/htmlkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main whose cache lives under a per-test temp
// directory so runs never touch the user's home directory.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.CachePath = filepath.Join(t.TempDir(), "cache.db")
	return m
}

func TestMain_Run_ParseWritesOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte(parseFixture), 0644))
	output := filepath.Join(dir, "tree.json")

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)
	err := m.Run(context.Background(), []string{"parse", input, output}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"doctype":"html"`)
	assert.Contains(t, string(data), `"title":"Fixture"`)
}

func TestMain_Run_CompareWritesReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file1 := filepath.Join(dir, "a.html")
	file2 := filepath.Join(dir, "b.html")
	require.NoError(t, os.WriteFile(file1, []byte(parseFixture), 0644))
	require.NoError(t, os.WriteFile(file2, []byte(parseFixture), 0644))
	output := filepath.Join(dir, "report.json")

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)
	err := m.Run(context.Background(), []string{"compare", file1, file2, output}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"totalDifferences": 0`)
}

func TestMain_Run_FailedCommandLeavesNoOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, "tree.json")

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)
	err := m.Run(context.Background(), []string{"parse", filepath.Join(dir, "missing.html"), output}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "failed runs must not create the output file")
}

func TestMain_Run_NoArgsReturnsError(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)
	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_UnknownCommandReturnsError(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)
	err := m.Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)

	require.Error(t, err)
}
