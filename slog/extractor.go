// Package slog provides logging decorators for the core interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Tylerbryy/extractr"
)

// Ensure LoggingExtractor implements extractr.Extractor.
var _ extractr.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with run-level logging.
type LoggingExtractor struct {
	next   extractr.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next extractr.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the run outcome and delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(ctx context.Context, url string, tmpl *extractr.Template, opts extractr.Options) (result *extractr.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if tmpl != nil {
			attrs = append(attrs, "template", tmpl.Name)
		}
		if result != nil {
			attrs = append(attrs,
				"records", len(result.Data),
				"pages", result.PagesExtracted,
				"partial", result.Partial,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err, "code", extractr.ErrorCode(err))
			e.logger.Error("extraction failed", attrs...)
			return
		}
		e.logger.Info("extraction complete", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, url, tmpl, opts)
}
