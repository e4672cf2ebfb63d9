// Package mock provides mock implementations of extractr interfaces
// for testing.
package mock

import (
	"context"
	"time"

	"github.com/Tylerbryy/extractr"
)

var _ extractr.Session = (*Session)(nil)

// Session is a mock implementation of extractr.Session. Nil function
// fields behave as benign no-ops so tests only set what they assert.
type Session struct {
	NavigateFn        func(ctx context.Context, url string, opts extractr.NavigateOptions) error
	WaitForSelectorFn func(ctx context.Context, selector string, timeout time.Duration) error
	WaitForDelayFn    func(ctx context.Context, d time.Duration) error
	ExistsFn          func(selector string) (bool, error)
	ActivateFn        func(selector string) error
	TitleFn           func() (string, error)
	ExtractFn         func(ctx context.Context, tmpl *extractr.Template, debug bool) ([]extractr.Record, error)
	CloseFn           func() error
}

func (s *Session) Navigate(ctx context.Context, url string, opts extractr.NavigateOptions) error {
	if s.NavigateFn == nil {
		return nil
	}
	return s.NavigateFn(ctx, url, opts)
}

func (s *Session) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	if s.WaitForSelectorFn == nil {
		return nil
	}
	return s.WaitForSelectorFn(ctx, selector, timeout)
}

func (s *Session) WaitForDelay(ctx context.Context, d time.Duration) error {
	if s.WaitForDelayFn == nil {
		return nil
	}
	return s.WaitForDelayFn(ctx, d)
}

func (s *Session) Exists(selector string) (bool, error) {
	if s.ExistsFn == nil {
		return false, nil
	}
	return s.ExistsFn(selector)
}

func (s *Session) Activate(selector string) error {
	if s.ActivateFn == nil {
		return nil
	}
	return s.ActivateFn(selector)
}

func (s *Session) Title() (string, error) {
	if s.TitleFn == nil {
		return "", nil
	}
	return s.TitleFn()
}

func (s *Session) Extract(ctx context.Context, tmpl *extractr.Template, debug bool) ([]extractr.Record, error) {
	if s.ExtractFn == nil {
		return nil, nil
	}
	return s.ExtractFn(ctx, tmpl, debug)
}

func (s *Session) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
