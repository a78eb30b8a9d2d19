package main

import (
	"context"
	"fmt"
	"time"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/ingest"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	var sources []*cardanomcp.DocumentationSource

	if c.ID != "" {
		source, err := deps.Sources.FindSourceByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'cardano-docs list' to see registered sources.\n", c.ID)
			return err
		}
		sources = append(sources, source)
	} else {
		var err error
		sources, err = deps.Sources.FindSources(deps.Ctx, cardanomcp.SourceFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
			return err
		}
		if len(sources) == 0 {
			fmt.Fprintln(deps.Stdout, "No sources registered. Use 'cardano-docs add' to register one.")
			return nil
		}
	}

	// Full refresh: drop indexed sections before re-ingesting.
	for _, source := range sources {
		if err := deps.Sections.DeleteSectionsBySource(deps.Ctx, source.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
			return err
		}
	}

	for _, source := range sources {
		if err := runIngest(deps, source.ID, []*cardanomcp.DocumentationSource{source}, c.Concurrency); err != nil {
			return err
		}
	}

	return nil
}

// fetchMarker is implemented by registries that track fetch times.
type fetchMarker interface {
	MarkFetched(ctx context.Context, id string, at time.Time) error
}

// runIngest runs the ingestor over the batch, printing progress, and
// records the fetch time on success.
func runIngest(deps *Dependencies, sourceID string, batch []*cardanomcp.DocumentationSource, concurrency int) error {
	if concurrency > 0 {
		deps.Ingestor.Concurrency = concurrency
	}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Ingesting %d pages\n", event.Total)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", ingest.TruncateURL(event.Location, 60), event.Err)
		case ingest.ProgressFinished:
			// Summary printed after ingestion completes
		}
	}

	result, err := deps.Ingestor.IngestSources(deps.Ctx, batch, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error ingesting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d sections from %d pages (%s)\n",
		result.Sections, result.Saved, ingest.FormatBytes(result.Bytes))

	if result.Saved > 0 {
		if marker, ok := deps.Sources.(fetchMarker); ok {
			if err := marker.MarkFetched(deps.Ctx, sourceID, time.Now().UTC()); err != nil {
				fmt.Fprintf(deps.Stderr, "warning: failed to record fetch time for %q: %s\n",
					sourceID, cardanomcp.ErrorMessage(err))
			}
		}
	}

	return nil
}
