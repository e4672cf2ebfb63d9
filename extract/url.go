package extract

import (
	"net/url"
	"strings"

	"github.com/Tylerbryy/extractr"
)

// NormalizeURL validates and normalizes user-supplied URL input. A
// missing scheme defaults to https; input without a resolvable hostname
// is rejected. The returned URL always carries an explicit path.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", extractr.Errorf(extractr.EINVALIDURL, "URL is empty")
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", extractr.Errorf(extractr.EINVALIDURL, "Invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", extractr.Errorf(extractr.EINVALIDURL, "Invalid URL %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Hostname() == "" {
		return "", extractr.Errorf(extractr.EINVALIDURL, "Invalid URL %q: missing hostname", raw)
	}

	if u.Path == "" {
		u.Path = "/"
	}

	return u.String(), nil
}
