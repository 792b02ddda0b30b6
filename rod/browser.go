package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// relaunched.
const DefaultMaxPages = 75

// browserManager owns the headless browser and relaunches it every
// maxPages pages, since Chrome's memory keeps growing under load.
type browserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	maxPages int
}

func newBrowserManager(maxPages int) (*browserManager, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	bm := &browserManager{maxPages: maxPages}
	if err := bm.launch(); err != nil {
		return nil, err
	}
	return bm, nil
}

// acquire returns the browser for one page, relaunching it first if the
// page budget is spent. A failed relaunch keeps the old browser.
func (bm *browserManager) acquire() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.pages >= bm.maxPages {
		oldBrowser, oldLauncher := bm.browser, bm.launcher
		if err := bm.launch(); err != nil {
			bm.browser, bm.launcher = oldBrowser, oldLauncher
		} else {
			_ = oldBrowser.Close()
			oldLauncher.Kill()
			bm.pages = 0
		}
	}
	bm.pages++
	return bm.browser
}

func (bm *browserManager) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = l
	return nil
}

func (bm *browserManager) close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}
