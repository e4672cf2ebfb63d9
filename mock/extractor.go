package mock

import (
	"context"

	"github.com/Tylerbryy/extractr"
)

var _ extractr.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of extractr.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string, tmpl *extractr.Template, opts extractr.Options) (*extractr.ExtractionResult, error)
}

func (e *Extractor) Extract(ctx context.Context, url string, tmpl *extractr.Template, opts extractr.Options) (*extractr.ExtractionResult, error) {
	return e.ExtractFn(ctx, url, tmpl, opts)
}
