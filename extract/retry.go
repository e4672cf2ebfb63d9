package extract

import (
	"context"
	"strings"
	"time"

	"github.com/Tylerbryy/extractr"
)

// baseRetryDelay is the unit for linear back-off: attempt N waits
// N * baseRetryDelay before the next attempt.
const baseRetryDelay = time.Second

// transientErrorMarkers is the fixed catalogue of navigation failure
// substrings considered transient and therefore worth retrying.
var transientErrorMarkers = []string{
	"timeout",
	"timed out",
	"context deadline exceeded",
	"net::err_connection",
	"net::err_network",
	"net::err_internet_disconnected",
	"net::err_name_not_resolved",
	"net::err_timed_out",
	"connection refused",
	"connection reset",
	"temporarily unavailable",
	"no such host",
	"eof",
}

// DefaultRetryDelays returns linearly increasing back-off delays for
// the given attempt budget: 1s, 2s, 3s, ... (attempts-1 entries).
func DefaultRetryDelays(attempts int) []time.Duration {
	if attempts < 2 {
		return nil
	}
	delays := make([]time.Duration, attempts-1)
	for i := range delays {
		delays[i] = time.Duration(i+1) * baseRetryDelay
	}
	return delays
}

// isTransient reports whether a navigation error matches the
// transient-network-error catalogue.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// classifyNavigation wraps a navigation error as PAGE_LOAD_FAILED,
// marking it recoverable only when the underlying failure is transient.
func classifyNavigation(err error, url string) error {
	if isTransient(err) {
		return extractr.RecoverableErrorf(extractr.EPAGELOADFAILED, "navigating to %s: %v", url, err)
	}
	return extractr.Errorf(extractr.EPAGELOADFAILED, "navigating to %s: %v", url, err)
}

// sleepCtx waits for d, returning early with the context's error on
// cancellation.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
