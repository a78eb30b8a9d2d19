package mock

import (
	"context"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

var _ cardanomcp.SitemapDiscoverer = (*SitemapDiscoverer)(nil)

// SitemapDiscoverer is a mock implementation of cardanomcp.SitemapDiscoverer.
type SitemapDiscoverer struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *cardanomcp.URLFilter) ([]string, error)
}

func (d *SitemapDiscoverer) DiscoverURLs(ctx context.Context, baseURL string, filter *cardanomcp.URLFilter) ([]string, error) {
	return d.DiscoverURLsFn(ctx, baseURL, filter)
}
