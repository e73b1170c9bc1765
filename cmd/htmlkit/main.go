package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlkit"
	"github.com/fwojciec/htmlkit/bluemonday"
	"github.com/fwojciec/htmlkit/fs"
	"github.com/fwojciec/htmlkit/goquery"
	"github.com/fwojciec/htmlkit/htmltomarkdown"
	kithttp "github.com/fwojciec/htmlkit/http"
	"github.com/fwojciec/htmlkit/readability"
	"github.com/fwojciec/htmlkit/rod"
	kitslog "github.com/fwojciec/htmlkit/slog"
	"github.com/fwojciec/htmlkit/sqlite"
	"github.com/fwojciec/htmlkit/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// Main wires the CLI to its dependencies. Tests override its fields
// before calling Run.
type Main struct {
	// Cache database path. Set before calling Run().
	CachePath string

	// SQLite database holding the page cache. Opened only when a
	// command enables caching.
	DB *sqlite.DB
}

// NewMain returns a Main with the default cache location.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
	}
}

// Close releases whatever Run opened.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes one CLI invocation against args.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Build the command grammar. Exit is stubbed so help cannot kill the
	// process, and deps is bound for the command Run methods.
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlkit"),
		kong.Description("Fetch, parse, analyze, compare, and convert HTML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to build CLI grammar: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'htmlkit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parsing has to happen before wiring so flags can steer which
	// fetcher and cache get built.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Services every command shares.
	deps.Parser = goquery.NewParser()
	deps.Writer = fs.NewWriter()
	deps.Sanitizer = bluemonday.NewSanitizer()
	deps.Converter = htmltomarkdown.NewConverter()

	timeout := 10 * time.Second
	if cmd == "read" && cli.Read.Timeout > 0 {
		timeout = cli.Read.Timeout
	}

	// Remote inputs go through a politeness-limited HTTP fetcher unless
	// the read command asks for browser rendering.
	limiter := kithttp.NewDomainLimiter(2.0)
	var fetcher htmlkit.Fetcher = kithttp.NewFetcher(
		kithttp.WithTimeout(timeout),
		kithttp.WithLimiter(limiter),
	)

	if cmd == "read" && cli.Read.Render {
		opts := []rod.Option{rod.WithFetchTimeout(timeout)}
		if cli.Read.WaitStable > 0 {
			opts = append(opts, rod.WithWaitStable(cli.Read.WaitStable))
		}
		browser, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: browser rendering requires a Chrome or Chromium install")
			return fmt.Errorf("failed to launch browser: %w", err)
		}
		fetcher = browser
	}

	if cmd == "read" && cli.Read.Cache {
		m.DB = sqlite.NewDB(m.CachePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set HTMLKIT_CACHE to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", m.CachePath, err)
		}
		defer m.Close()

		renderer := "static"
		if cli.Read.Render {
			renderer = "browser"
		}
		pages := kitslog.NewLoggingPageService(sqlite.NewPageService(m.DB), logger)
		fetcher = sqlite.NewCachingFetcher(fetcher, pages, renderer)
	}

	deps.Fetcher = kitslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	deps.Extractor = trafilatura.NewExtractor()
	if cmd == "extract" && cli.Extract.Engine == "readability" {
		deps.Extractor = readability.NewExtractor()
	}

	return kongCtx.Run(deps)
}

// newLogger builds the CLI logger. Decorators log at info level, so the
// default warn threshold keeps normal runs quiet.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultCachePath() string {
	if path := os.Getenv("HTMLKIT_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "htmlkit.db"
	}
	dir := filepath.Join(home, ".htmlkit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "htmlkit.db")
}
