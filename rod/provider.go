// Package rod implements the page automation provider using Chrome
// browser automation via go-rod.
package rod

import (
	"context"
	"fmt"

	"github.com/Tylerbryy/extractr"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Provider implements extractr.Provider at compile time.
var _ extractr.Provider = (*Provider)(nil)

// Provider launches and owns a headless Chrome browser and hands out
// one page session per extraction run. Provider is safe for concurrent
// use; the sessions it creates are not.
type Provider struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// NewProvider launches a headless Chrome browser with stability flags.
// Close must be called when the Provider is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewProvider() (*Provider, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Provider{browser: browser, launcher: lnchr}, nil
}

// NewSession opens a fresh page.
func (p *Provider) NewSession(ctx context.Context) (extractr.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := p.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return &Session{page: page}, nil
}

// Close releases browser resources.
func (p *Provider) Close() error {
	err := p.browser.Close()
	if p.launcher != nil {
		p.launcher.Kill()
	}
	return err
}
