package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of rendered pages after which the browser
// is relaunched.
const DefaultMaxPages = 75

// session is one launched Chrome instance together with its launcher.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// launchSession starts headless Chrome with flags that keep rendering
// deterministic in the background and inside containers.
func launchSession() (*session, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	wsURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(wsURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	return &session{browser: browser, launcher: l}, nil
}

// close shuts down the browser and its launcher process.
func (s *session) close() error {
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}

// BrowserManager hands out a shared headless Chrome instance and replaces
// it after a fixed number of rendered pages. Chrome's memory baseline
// grows with every page and closing pages does not reclaim it, so
// relaunching is what keeps long runs flat.
//
// A single BrowserManager may be shared by concurrent renders.
type BrowserManager struct {
	mu       sync.Mutex
	cur      *session
	rendered atomic.Int64
	maxPages int64
	closed   atomic.Bool
}

// ManagerOption adjusts how a BrowserManager behaves.
type ManagerOption func(*BrowserManager)

// WithMaxPages overrides the recycling threshold. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches headless Chrome and returns a manager for it.
// Close must be called when the manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	s, err := launchSession()
	if err != nil {
		return nil, err
	}
	bm.cur = s

	return bm, nil
}

// Browser returns the current browser, first replacing it when the
// rendered-page count has reached the threshold. Callers report rendered
// pages with IncrementPageCount.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.cur == nil {
		return nil
	}
	if bm.rendered.Load() >= bm.maxPages {
		bm.recycle()
	}
	return bm.cur.browser
}

// IncrementPageCount records one rendered page toward the recycling
// threshold.
func (bm *BrowserManager) IncrementPageCount() {
	bm.rendered.Add(1)
}

// Close shuts down the browser. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.cur == nil {
		return nil
	}
	err := bm.cur.close()
	bm.cur = nil
	return err
}

// recycle swaps in a freshly launched browser and tears down the old one.
// When the new launch fails the old browser stays so rendering can
// continue. Must be called with mu held.
func (bm *BrowserManager) recycle() {
	s, err := launchSession()
	if err != nil {
		return
	}

	old := bm.cur
	bm.cur = s
	bm.rendered.Store(0)

	if old != nil {
		_ = old.close()
	}
}

// LauncherPID reports the PID of the current launcher process, or 0 once
// the browser is closed. Tests use it to verify cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.cur == nil {
		return 0
	}
	return bm.cur.launcher.PID()
}
