// Package mock provides test doubles for mdview interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/mdview"
)

// Interface compliance check.
var _ mdview.Fetcher = (*Fetcher)(nil)

// Fetcher is a test double for mdview.Fetcher.
// Set FetchFn before calling Fetch.
type Fetcher struct {
	FetchFn func(ctx context.Context, path string) (*mdview.Response, error)
}

// Fetch delegates to FetchFn.
func (f *Fetcher) Fetch(ctx context.Context, path string) (*mdview.Response, error) {
	return f.FetchFn(ctx, path)
}
