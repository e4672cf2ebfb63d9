package extractr

import (
	"context"
	"time"
)

// WaitMode selects the readiness condition for navigation.
type WaitMode int

// Navigation wait modes.
const (
	// WaitNetworkIdle waits for the page to stop issuing requests.
	// Used when JavaScript rendering is enabled.
	WaitNetworkIdle WaitMode = iota

	// WaitDOMReady waits only for the document to finish loading.
	WaitDOMReady
)

// NavigateOptions control a single navigation.
type NavigateOptions struct {
	WaitMode WaitMode
	Timeout  time.Duration
}

// Session is one live page held open by a page automation provider.
// A session is owned by a single extraction run and is not safe for
// concurrent use.
type Session interface {
	// Navigate loads the URL and waits for the configured readiness mode.
	Navigate(ctx context.Context, url string, opts NavigateOptions) error

	// WaitForSelector blocks until the selector matches an element or
	// the timeout elapses.
	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error

	// WaitForDelay sleeps for the given duration, honoring cancellation.
	WaitForDelay(ctx context.Context, d time.Duration) error

	// Exists reports whether the selector currently matches an element.
	Exists(selector string) (bool, error)

	// Activate clicks the element matched by the selector.
	Activate(selector string) error

	// Title returns the current document title.
	Title() (string, error)

	// Extract runs the field extraction engine against the current
	// document and returns one record per container match.
	Extract(ctx context.Context, tmpl *Template, debug bool) ([]Record, error)

	// Close releases the page. Safe to call on every exit path.
	Close() error
}

// Provider creates page sessions. Implementations may use browser
// automation to handle JavaScript-rendered content.
type Provider interface {
	// NewSession opens a fresh page session.
	NewSession(ctx context.Context) (Session, error)

	// Close releases browser resources. Must be called when the
	// Provider is no longer needed.
	Close() error
}

// Extractor runs template-driven extraction against a URL.
type Extractor interface {
	// Extract validates the URL and template, navigates, and returns
	// the extracted records, possibly partial. The context controls
	// cancellation.
	Extract(ctx context.Context, url string, tmpl *Template, opts Options) (*ExtractionResult, error)
}

// TemplateLoader resolves a template identifier to a Template.
type TemplateLoader interface {
	// Load returns the template for the identifier: a built-in name, or
	// a YAML file path when local is true. Returns an error with code
	// ENOTFOUND for unknown names or missing files.
	Load(identifier string, local bool) (*Template, error)
}
