package cardanomcp

import (
	"context"
	"time"
)

// SourceType identifies where a documentation source lives.
type SourceType string

// Supported source types.
const (
	SourceTypeWeb    SourceType = "web"
	SourceTypeGitHub SourceType = "github"
	SourceTypeLocal  SourceType = "local"
)

// DocumentationSource identifies a documentation location to ingest.
// Sources are created through a SourceRegistry and are immutable once
// fetched against.
type DocumentationSource struct {
	ID          string     `json:"id"`
	Location    string     `json:"location"`
	Type        SourceType `json:"type"`
	LastFetched *time.Time `json:"lastFetched,omitempty"`
	Version     string     `json:"version,omitempty"`
}

// Validate returns an error if the source contains invalid fields.
func (s *DocumentationSource) Validate() error {
	if s.Location == "" {
		return Errorf(EINVALID, "source location required")
	}
	switch s.Type {
	case SourceTypeWeb, SourceTypeGitHub, SourceTypeLocal:
	default:
		return Errorf(EINVALID, "unknown source type %q", s.Type)
	}
	return nil
}

// SourceFilter represents a filter for FindSources.
type SourceFilter struct {
	ID   *string     `json:"id"`
	Type *SourceType `json:"type"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SourceRegistry manages documentation sources. It replaces the
// process-wide singleton registry: an instance is constructed explicitly
// and passed by reference to consumers.
type SourceRegistry interface {
	// AddSource registers a new source. An ID is assigned if empty.
	AddSource(ctx context.Context, source *DocumentationSource) error

	// FindSourceByID retrieves a source by ID.
	// Returns ENOTFOUND if the source does not exist.
	FindSourceByID(ctx context.Context, id string) (*DocumentationSource, error)

	// FindSources retrieves sources matching the filter.
	FindSources(ctx context.Context, filter SourceFilter) ([]*DocumentationSource, error)

	// DeleteSource removes a source and its indexed sections.
	// Returns ENOTFOUND if the source does not exist.
	DeleteSource(ctx context.Context, id string) error
}
