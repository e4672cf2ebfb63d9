package extract

import (
	"strings"

	"github.com/Tylerbryy/extractr"
)

// blockingSelectors are DOM signatures of pages that interpose a
// challenge between the visitor and the content. Detection only
// produces warnings: a blocked page may still yield partial content.
var blockingSelectors = []struct {
	selector string
	reason   string
}{
	{"#captcha, .captcha, [class*='captcha']", "CAPTCHA detected"},
	{".g-recaptcha, iframe[src*='recaptcha']", "reCAPTCHA detected"},
	{".h-captcha, iframe[src*='hcaptcha']", "hCaptcha detected"},
	{"#challenge-form, #challenge-running, #cf-challenge-running", "anti-bot challenge detected"},
	{"form[action*='login'] input[type='password']", "login wall detected"},
	{"#access-denied, .access-denied", "access denied page detected"},
}

// blockingTitleMarkers are page-title substrings that signal a
// challenge or denial page.
var blockingTitleMarkers = []string{
	"access denied",
	"attention required",
	"just a moment",
	"captcha",
	"robot check",
	"please verify",
	"security check",
	"403 forbidden",
	"are you a human",
}

// scanForBlocking checks the current page for known blocking
// signatures and returns one warning per match. It never fails: errors
// from the session are ignored, since the scan is advisory.
func scanForBlocking(sess extractr.Session) []string {
	var warnings []string

	for _, sig := range blockingSelectors {
		if found, err := sess.Exists(sig.selector); err == nil && found {
			warnings = append(warnings, sig.reason)
		}
	}

	if title, err := sess.Title(); err == nil {
		lower := strings.ToLower(title)
		for _, marker := range blockingTitleMarkers {
			if strings.Contains(lower, marker) {
				warnings = append(warnings, "blocking keyword in page title: "+marker)
				break
			}
		}
	}

	return warnings
}
