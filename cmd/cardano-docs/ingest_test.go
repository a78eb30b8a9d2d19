package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	main "github.com/Jimmyh-world/Cardano-MCP-sub001/cmd/cardano-docs"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/goldmark"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/goquery"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/ingest"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/mock"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markingRegistry adds fetch-time tracking to the mock registry.
type markingRegistry struct {
	mock.SourceRegistry
	MarkFetchedFn func(ctx context.Context, id string, at time.Time) error
}

func (r *markingRegistry) MarkFetched(ctx context.Context, id string, at time.Time) error {
	return r.MarkFetchedFn(ctx, id, at)
}

func ingestTestDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	deps := testDeps(stdout, stderr)

	store := &mock.SectionStore{
		SaveSectionFn: func(ctx context.Context, meta *cardanomcp.DocumentationMetadata, section *cardanomcp.ParsedSection) error {
			return nil
		},
		DeleteSectionsBySourceFn: func(ctx context.Context, sourceID string) error {
			return nil
		},
	}
	deps.Sections = store
	deps.Ingestor = &ingest.Ingestor{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, source *cardanomcp.DocumentationSource) (*cardanomcp.FetchResult, error) {
				return &cardanomcp.FetchResult{
					Content:     "<html><body><h1>Staking</h1><p>Delegate ada.</p></body></html>",
					ContentType: "text/html",
					StatusCode:  200,
				}, nil
			},
		},
		Parser: &parse.Parser{
			Cleaner:  goquery.NewCleaner(),
			Sections: goquery.NewExtractor(),
			Markdown: goldmark.NewConverter(),
			Config:   parse.DefaultConfig(),
		},
		Store: store,
	}
	return deps
}

func TestIngestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("records fetch time after a successful run", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := ingestTestDeps(stdout, stderr)

		marked := ""
		deps.Sources = &markingRegistry{
			SourceRegistry: mock.SourceRegistry{
				FindSourceByIDFn: func(ctx context.Context, id string) (*cardanomcp.DocumentationSource, error) {
					return &cardanomcp.DocumentationSource{
						ID: id, Location: "https://docs.cardano.org/learn", Type: cardanomcp.SourceTypeWeb,
					}, nil
				},
			},
			MarkFetchedFn: func(ctx context.Context, id string, at time.Time) error {
				marked = id
				return nil
			},
		}

		cmd := &main.IngestCmd{ID: "cardano-docs"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "cardano-docs", marked)
		assert.Contains(t, stdout.String(), "Saved 1 sections")
		assert.Empty(t, stderr.String())
	})

	t.Run("warns when recording fetch time fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := ingestTestDeps(stdout, stderr)

		deps.Sources = &markingRegistry{
			SourceRegistry: mock.SourceRegistry{
				FindSourceByIDFn: func(ctx context.Context, id string) (*cardanomcp.DocumentationSource, error) {
					return &cardanomcp.DocumentationSource{
						ID: id, Location: "https://docs.cardano.org/learn", Type: cardanomcp.SourceTypeWeb,
					}, nil
				},
			},
			MarkFetchedFn: func(ctx context.Context, id string, at time.Time) error {
				return cardanomcp.Errorf(cardanomcp.EINTERNAL, "disk full")
			},
		}

		cmd := &main.IngestCmd{ID: "cardano-docs"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "failed to record fetch time")
		assert.Contains(t, stderr.String(), "disk full")
	})
}
