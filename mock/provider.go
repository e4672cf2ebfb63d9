package mock

import (
	"context"

	"github.com/Tylerbryy/extractr"
)

var _ extractr.Provider = (*Provider)(nil)

// Provider is a mock implementation of extractr.Provider.
type Provider struct {
	NewSessionFn func(ctx context.Context) (extractr.Session, error)
	CloseFn      func() error
}

func (p *Provider) NewSession(ctx context.Context) (extractr.Session, error) {
	return p.NewSessionFn(ctx)
}

func (p *Provider) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
