package cardanomcp

import (
	"context"
	"time"
)

// IndexedSection is a stored section together with its metadata and
// bookkeeping fields maintained by the store.
type IndexedSection struct {
	Metadata    DocumentationMetadata `json:"metadata"`
	Section     ParsedSection         `json:"section"`
	ContentHash string                `json:"contentHash"`
	IndexedAt   time.Time             `json:"indexedAt"`
}

// SectionStore is the persistence facade for indexed documentation
// content. The pipeline core makes no assumption about how records are
// stored or embedded downstream.
type SectionStore interface {
	// SaveSection stores a section under its metadata ID, replacing any
	// previous record with the same ID.
	SaveSection(ctx context.Context, meta *DocumentationMetadata, section *ParsedSection) error

	// FindSectionByID retrieves a stored section by metadata ID.
	// Returns ENOTFOUND if the section does not exist.
	FindSectionByID(ctx context.Context, id string) (*IndexedSection, error)

	// FindMetadataBySource retrieves metadata for all sections of a
	// source, ordered by rank then ID.
	FindMetadataBySource(ctx context.Context, sourceID string) ([]*DocumentationMetadata, error)

	// DeleteSectionsBySource removes all sections for a source.
	DeleteSectionsBySource(ctx context.Context, sourceID string) error
}
