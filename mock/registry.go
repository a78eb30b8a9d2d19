package mock

import (
	"context"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

var _ cardanomcp.SourceRegistry = (*SourceRegistry)(nil)

// SourceRegistry is a mock implementation of cardanomcp.SourceRegistry.
type SourceRegistry struct {
	AddSourceFn      func(ctx context.Context, source *cardanomcp.DocumentationSource) error
	FindSourceByIDFn func(ctx context.Context, id string) (*cardanomcp.DocumentationSource, error)
	FindSourcesFn    func(ctx context.Context, filter cardanomcp.SourceFilter) ([]*cardanomcp.DocumentationSource, error)
	DeleteSourceFn   func(ctx context.Context, id string) error
}

func (r *SourceRegistry) AddSource(ctx context.Context, source *cardanomcp.DocumentationSource) error {
	return r.AddSourceFn(ctx, source)
}

func (r *SourceRegistry) FindSourceByID(ctx context.Context, id string) (*cardanomcp.DocumentationSource, error) {
	return r.FindSourceByIDFn(ctx, id)
}

func (r *SourceRegistry) FindSources(ctx context.Context, filter cardanomcp.SourceFilter) ([]*cardanomcp.DocumentationSource, error) {
	return r.FindSourcesFn(ctx, filter)
}

func (r *SourceRegistry) DeleteSource(ctx context.Context, id string) error {
	return r.DeleteSourceFn(ctx, id)
}
