package extractr

import "time"

// Record is one extracted item: a mapping from field name to value.
// Every field declared in the template produces exactly one key, so
// record shape is stable across all items of one run even when
// individual fields fail and fall back.
type Record = map[string]any

// PageFunc is called after each page of records has been extracted.
type PageFunc func(records []Record, page int)

// Options control a single extraction run. Cancellation rides on the
// context passed to Extractor.Extract.
type Options struct {
	// Debug enables collection of DebugInfo on the result.
	Debug bool

	// MaxRetries is the number of navigation attempts. Defaults to 3.
	MaxRetries int

	// OnPage, if set, receives each page's records as they arrive.
	OnPage PageFunc
}

// Retries returns the attempt budget, defaulting to 3.
func (o Options) Retries() int {
	if o.MaxRetries < 1 {
		return 3
	}
	return o.MaxRetries
}

// ExtractionResult holds the outcome of one extraction run.
type ExtractionResult struct {
	// Data is the ordered sequence of extracted records.
	Data []Record `json:"data"`

	// Partial is true when extraction stopped early (cancellation,
	// timeout, or pagination failure) but still returned some data.
	Partial bool `json:"partial,omitempty"`

	// PagesExtracted counts the pages that produced records.
	PagesExtracted int `json:"pagesExtracted"`

	// Debug is populated when Options.Debug is set.
	Debug *DebugInfo `json:"debug,omitempty"`
}

// DebugInfo carries diagnostic detail about one extraction run.
type DebugInfo struct {
	TemplateName string        `json:"templateName"`
	URL          string        `json:"url"`
	Records      int           `json:"records"`
	Errors       []string      `json:"errors,omitempty"`
	Warnings     []string      `json:"warnings,omitempty"`
	Sample       []Record      `json:"sample,omitempty"`
	Duration     time.Duration `json:"duration"`

	// PageHashes holds one digest per extracted page batch. Identical
	// consecutive digests suggest a "next" control that points back to
	// the same page; this is surfaced as a warning only, the MaxPages
	// cap remains the sole safety net.
	PageHashes []string `json:"pageHashes,omitempty"`
}
