package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/Tylerbryy/extractr"
)

// Ensure LoggingSession implements extractr.Session.
var _ extractr.Session = (*LoggingSession)(nil)

// LoggingSession wraps a Session with debug logging for the operations
// that touch the network or mutate page state.
type LoggingSession struct {
	next   extractr.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next extractr.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// Navigate logs the URL being loaded and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string, opts extractr.NavigateOptions) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url, opts)
}

// WaitForSelector delegates to the wrapped session.
func (s *LoggingSession) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	return s.next.WaitForSelector(ctx, selector, timeout)
}

// WaitForDelay delegates to the wrapped session.
func (s *LoggingSession) WaitForDelay(ctx context.Context, d time.Duration) error {
	return s.next.WaitForDelay(ctx, d)
}

// Exists delegates to the wrapped session.
func (s *LoggingSession) Exists(selector string) (bool, error) {
	return s.next.Exists(selector)
}

// Activate logs the selector being clicked and delegates to the wrapped session.
func (s *LoggingSession) Activate(selector string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("activate",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Activate(selector)
}

// Title delegates to the wrapped session.
func (s *LoggingSession) Title() (string, error) {
	return s.next.Title()
}

// Extract logs the record count and delegates to the wrapped session.
func (s *LoggingSession) Extract(ctx context.Context, tmpl *extractr.Template, debug bool) (records []extractr.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract",
			"template", tmpl.Name,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Extract(ctx, tmpl, debug)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}
