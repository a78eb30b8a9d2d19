package mock

import (
	"context"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

var _ cardanomcp.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cardanomcp.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, source *cardanomcp.DocumentationSource) (*cardanomcp.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, source *cardanomcp.DocumentationSource) (*cardanomcp.FetchResult, error) {
	return f.FetchFn(ctx, source)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
