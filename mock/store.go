package mock

import (
	"context"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

var _ cardanomcp.SectionStore = (*SectionStore)(nil)

// SectionStore is a mock implementation of cardanomcp.SectionStore.
type SectionStore struct {
	SaveSectionFn            func(ctx context.Context, meta *cardanomcp.DocumentationMetadata, section *cardanomcp.ParsedSection) error
	FindSectionByIDFn        func(ctx context.Context, id string) (*cardanomcp.IndexedSection, error)
	FindMetadataBySourceFn   func(ctx context.Context, sourceID string) ([]*cardanomcp.DocumentationMetadata, error)
	DeleteSectionsBySourceFn func(ctx context.Context, sourceID string) error
}

func (s *SectionStore) SaveSection(ctx context.Context, meta *cardanomcp.DocumentationMetadata, section *cardanomcp.ParsedSection) error {
	return s.SaveSectionFn(ctx, meta, section)
}

func (s *SectionStore) FindSectionByID(ctx context.Context, id string) (*cardanomcp.IndexedSection, error) {
	return s.FindSectionByIDFn(ctx, id)
}

func (s *SectionStore) FindMetadataBySource(ctx context.Context, sourceID string) ([]*cardanomcp.DocumentationMetadata, error) {
	return s.FindMetadataBySourceFn(ctx, sourceID)
}

func (s *SectionStore) DeleteSectionsBySource(ctx context.Context, sourceID string) error {
	return s.DeleteSectionsBySourceFn(ctx, sourceID)
}
