// Package extract provides the extraction orchestrator. It coordinates
// a page automation provider, the template validator, and the field
// extraction engine, adding retries, cancellation, overall-timeout
// budgeting, blocking-content detection, and partial-result recovery.
package extract

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/Tylerbryy/extractr"
	"github.com/cespare/xxhash/v2"
)

// selectorWaitTimeout bounds the wait for a template's readiness
// selector. A timeout here is non-recoverable: no content can be
// trusted if the page never became ready.
const selectorWaitTimeout = 10 * time.Second

// debugSampleSize is the number of records kept in DebugInfo.Sample.
const debugSampleSize = 3

// Ensure Extractor implements extractr.Extractor at compile time.
var _ extractr.Extractor = (*Extractor)(nil)

// Extractor orchestrates multi-page template extraction over a page
// automation provider. A single extraction run is single-flow: one
// page session is open at a time, and it is released on every exit
// path.
type Extractor struct {
	Provider extractr.Provider

	// Limiter, if set, gates navigation and pagination per domain.
	Limiter *DomainLimiter

	// Logger, if set, receives retry and blocking-content warnings.
	Logger *slog.Logger

	// RetryDelays overrides the linear back-off schedule. Useful for
	// testing without waiting for real delays.
	RetryDelays []time.Duration
}

// Extract validates the URL and template, then runs the retry and
// pagination loops. Once at least one record has been collected, every
// subsequent failure degrades to a partial result; only pre-first-page
// failures surface as errors.
func (e *Extractor) Extract(ctx context.Context, rawURL string, tmpl *extractr.Template, opts extractr.Options) (*extractr.ExtractionResult, error) {
	started := time.Now()

	pageURL, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	if errs := extractr.ValidateTemplate(tmpl); len(errs) > 0 {
		return nil, extractr.Errorf(extractr.EINVALIDTEMPLATE, "invalid template: %s", strings.Join(errs, "; "))
	}

	if ctx.Err() != nil {
		return nil, extractr.Errorf(extractr.ECANCELLED, "extraction cancelled")
	}

	var dbg *extractr.DebugInfo
	if opts.Debug {
		dbg = &extractr.DebugInfo{
			TemplateName: tmpl.Name,
			URL:          pageURL,
		}
	}

	deadline := started.Add(time.Duration(tmpl.Options.TimeoutMs()) * time.Millisecond)

	attempts := opts.Retries()
	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays(attempts)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return nil, extractr.Errorf(extractr.ECANCELLED, "extraction cancelled before attempt %d", attempt)
		}

		result, err := e.runAttempt(ctx, pageURL, tmpl, opts, deadline, dbg)
		if err == nil {
			e.finishDebug(result, dbg, started)
			return result, nil
		}
		lastErr = err
		if dbg != nil {
			dbg.Errors = append(dbg.Errors, fmt.Sprintf("attempt %d: %s", attempt, extractr.ErrorMessage(err)))
		}

		if !extractr.IsRecoverable(err) {
			return nil, err
		}
		if attempt == attempts {
			break
		}

		e.logWarn("retrying after navigation failure",
			"url", pageURL, "attempt", attempt, "err", err)

		var delay time.Duration
		if len(delays) > 0 {
			delay = delays[min(attempt-1, len(delays)-1)]
		}
		if err := sleepCtx(ctx, delay); err != nil {
			return nil, extractr.Errorf(extractr.ECANCELLED, "extraction cancelled during back-off")
		}
	}

	return nil, extractr.Errorf(extractr.EEXTRACTIONFAILED,
		"extraction failed after %d attempts: %s", attempts, extractr.ErrorMessage(lastErr))
}

// runAttempt performs one full navigation and pagination pass. The
// page session acquired here is closed on every exit path.
func (e *Extractor) runAttempt(ctx context.Context, pageURL string, tmpl *extractr.Template, opts extractr.Options, deadline time.Time, dbg *extractr.DebugInfo) (*extractr.ExtractionResult, error) {
	sess, err := e.Provider.NewSession(ctx)
	if err != nil {
		return nil, extractr.RecoverableErrorf(extractr.EPAGELOADFAILED, "acquiring page session: %v", err)
	}
	defer sess.Close()

	if err := e.waitLimiter(ctx, pageURL); err != nil {
		return nil, extractr.Errorf(extractr.ECANCELLED, "extraction cancelled while rate limited")
	}

	mode := extractr.WaitDOMReady
	if tmpl.Options.JSEnabled() {
		mode = extractr.WaitNetworkIdle
	}
	nav := extractr.NavigateOptions{
		WaitMode: mode,
		Timeout:  time.Duration(tmpl.Options.TimeoutMs()) * time.Millisecond,
	}
	if err := sess.Navigate(ctx, pageURL, nav); err != nil {
		return nil, classifyNavigation(err, pageURL)
	}

	// Blocking signatures only warn: a challenge page may still carry
	// partial content worth extracting.
	for _, warning := range scanForBlocking(sess) {
		e.logWarn("page may be blocking extraction", "url", pageURL, "reason", warning)
		if dbg != nil {
			dbg.Warnings = append(dbg.Warnings, warning)
		}
	}

	if tmpl.Options != nil && tmpl.Options.WaitForSelector != "" {
		if err := sess.WaitForSelector(ctx, tmpl.Options.WaitForSelector, selectorWaitTimeout); err != nil {
			return nil, extractr.Errorf(extractr.ESELECTORTIMEOUT,
				"timed out waiting for selector %q", tmpl.Options.WaitForSelector)
		}
	}
	if tmpl.Options != nil && tmpl.Options.WaitMs > 0 {
		_ = sess.WaitForDelay(ctx, time.Duration(tmpl.Options.WaitMs)*time.Millisecond)
	}

	if time.Now().After(deadline) {
		return nil, extractr.Errorf(extractr.EOVERALLTIMEOUT, "extraction budget exhausted before first page")
	}

	return e.paginate(ctx, sess, pageURL, tmpl, opts, deadline, dbg)
}

// paginate runs the extraction engine across pages, honoring the
// overall budget and converting post-first-page failures into partial
// results.
func (e *Extractor) paginate(ctx context.Context, sess extractr.Session, pageURL string, tmpl *extractr.Template, opts extractr.Options, deadline time.Time, dbg *extractr.DebugInfo) (*extractr.ExtractionResult, error) {
	result := &extractr.ExtractionResult{Data: []extractr.Record{}}
	maxPages := tmpl.Pagination.Pages()
	var lastHash string

	for page := 1; page <= maxPages; page++ {
		if ctx.Err() != nil {
			if result.PagesExtracted > 0 {
				result.Partial = true
				return result, nil
			}
			return nil, extractr.Errorf(extractr.ECANCELLED, "extraction cancelled on page %d", page)
		}

		records, err := sess.Extract(ctx, tmpl, opts.Debug)
		if err != nil {
			if result.PagesExtracted > 0 {
				if dbg != nil {
					dbg.Errors = append(dbg.Errors, fmt.Sprintf("page %d: %s", page, extractr.ErrorMessage(err)))
				}
				result.Partial = true
				return result, nil
			}
			return nil, extractr.Errorf(extractr.EEXTRACTIONFAILED, "extracting page %d: %v", page, extractr.ErrorMessage(err))
		}

		result.Data = append(result.Data, records...)
		result.PagesExtracted++

		if dbg != nil {
			hash := hashRecords(records)
			if lastHash != "" && hash == lastHash {
				dbg.Warnings = append(dbg.Warnings,
					fmt.Sprintf("page %d returned identical content to the previous page; the next selector may point back to the same page", page))
			}
			lastHash = hash
			dbg.PageHashes = append(dbg.PageHashes, hash)
		}

		if opts.OnPage != nil {
			opts.OnPage(records, page)
		}

		if time.Now().After(deadline) {
			result.Partial = page < maxPages
			return result, nil
		}

		if page == maxPages || tmpl.Pagination == nil {
			break
		}

		// Absence of the next control is the natural end of data,
		// not an error and not a partial result.
		exists, err := sess.Exists(tmpl.Pagination.NextSelector)
		if err != nil || !exists {
			break
		}

		if err := e.waitLimiter(ctx, pageURL); err != nil {
			result.Partial = true
			return result, nil
		}
		if err := sess.Activate(tmpl.Pagination.NextSelector); err != nil {
			e.logWarn("pagination activation failed, keeping collected records",
				"url", pageURL, "page", page, "err", err)
			result.Partial = true
			return result, nil
		}

		// Tolerate a failure to reach a fully idle state after paging.
		_ = sess.WaitForDelay(ctx, time.Duration(tmpl.Pagination.Delay())*time.Millisecond)
	}

	return result, nil
}

// waitLimiter applies the optional per-domain politeness limit.
func (e *Extractor) waitLimiter(ctx context.Context, pageURL string) error {
	if e.Limiter == nil {
		return nil
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}
	return e.Limiter.Wait(ctx, u.Host)
}

// finishDebug fills in the run-level debug fields.
func (e *Extractor) finishDebug(result *extractr.ExtractionResult, dbg *extractr.DebugInfo, started time.Time) {
	if dbg == nil {
		return
	}
	dbg.Records = len(result.Data)
	dbg.Duration = time.Since(started)
	if n := min(debugSampleSize, len(result.Data)); n > 0 {
		dbg.Sample = result.Data[:n]
	}
	result.Debug = dbg
}

// hashRecords digests one page's record batch for the debug
// identical-page warning. JSON marshaling sorts map keys, so the digest
// is deterministic for equal batches.
func hashRecords(records []extractr.Record) string {
	b, err := json.Marshal(records)
	if err != nil {
		b = []byte(fmt.Sprint(records))
	}
	sum := xxhash.Sum64(b)
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(sum >> (8 * (7 - i)))
	}
	return hex.EncodeToString(buf[:])
}

func (e *Extractor) logWarn(msg string, args ...any) {
	if e.Logger != nil {
		e.Logger.Warn(msg, args...)
	}
}
