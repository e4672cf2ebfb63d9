package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/Tylerbryy/extractr"
	engine "github.com/Tylerbryy/extractr/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// requestIdleWindow is how long the network must stay quiet before a
// WaitNetworkIdle navigation is considered settled.
const requestIdleWindow = 300 * time.Millisecond

// Ensure Session implements extractr.Session at compile time.
var _ extractr.Session = (*Session)(nil)

// Session is one live Chrome page. It is owned by a single extraction
// run and is not safe for concurrent use.
type Session struct {
	page *rod.Page
}

// Navigate loads the URL and waits for the configured readiness mode:
// document load for WaitDOMReady, document load plus a quiet network
// window for WaitNetworkIdle.
func (s *Session) Navigate(ctx context.Context, url string, opts extractr.NavigateOptions) error {
	page := s.page.Context(ctx)
	if opts.Timeout > 0 {
		page = page.Timeout(opts.Timeout)
	}

	if err := page.Navigate(url); err != nil {
		return err
	}
	if err := page.WaitLoad(); err != nil {
		return err
	}

	if opts.WaitMode == extractr.WaitNetworkIdle {
		wait := page.WaitRequestIdle(requestIdleWindow, nil, nil, nil)
		wait()
	}

	return nil
}

// WaitForSelector blocks until the selector matches an element or the
// timeout elapses.
func (s *Session) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	_, err := s.page.Context(ctx).Timeout(timeout).Element(selector)
	return err
}

// WaitForDelay sleeps for the given duration, honoring cancellation.
func (s *Session) WaitForDelay(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Exists reports whether the selector currently matches an element.
func (s *Session) Exists(selector string) (bool, error) {
	has, _, err := s.page.Has(selector)
	return has, err
}

// Activate clicks the element matched by the selector.
func (s *Session) Activate(selector string) error {
	has, el, err := s.page.Has(selector)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("no element matches %q", selector)
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// Title returns the current document title.
func (s *Session) Title() (string, error) {
	info, err := s.page.Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

// Extract captures the rendered HTML and runs the field extraction
// engine against it, resolving url-typed fields against the page's
// current address.
func (s *Session) Extract(ctx context.Context, tmpl *extractr.Template, debug bool) ([]extractr.Record, error) {
	page := s.page.Context(ctx)

	info, err := page.Info()
	if err != nil {
		return nil, err
	}
	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	return engine.Evaluate(html, tmpl, info.URL)
}

// Close releases the page.
func (s *Session) Close() error {
	return s.page.Close()
}
