// Package ingest coordinates batch ingestion of documentation sources:
// fetching, parsing, metadata generation, and persistence. A failing
// source is recorded and skipped; the batch continues.
package ingest

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/bloom"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/parse"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel source processing when the Ingestor
// does not specify a limit.
const DefaultConcurrency = 5

// Ingestor processes documentation sources into stored, metadata-tagged
// sections.
type Ingestor struct {
	Fetcher cardanomcp.Fetcher
	Parser  *parse.Parser
	Store   cardanomcp.SectionStore

	// Limiter, when set, throttles requests per host.
	Limiter *HostLimiter

	// Seen, when set, skips locations already ingested in earlier
	// batches. False positives drop at most a duplicate-looking source.
	Seen *bloom.SeenFilter

	Concurrency int
}

// Result holds the outcome of a batch ingestion.
type Result struct {
	Saved    int
	Failed   int
	Skipped  int
	Sections int
	Bytes    int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch ingestion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	SourceID  string
	Location  string
	Err       error
}

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// sourceResult holds the outcome of processing a single source.
type sourceResult struct {
	position int
	source   *cardanomcp.DocumentationSource
	sections []cardanomcp.ParsedSection
	err      error
}

// IngestSources fetches, parses, and stores every source. Per-source
// failures are reported through the progress callback and the result
// counters; only context cancellation aborts the batch.
func (ing *Ingestor) IngestSources(ctx context.Context, sources []*cardanomcp.DocumentationSource, progress ProgressFunc) (*Result, error) {
	var result Result

	pending := make([]*cardanomcp.DocumentationSource, 0, len(sources))
	inBatch := make(map[string]struct{}, len(sources))
	for _, source := range sources {
		if _, dup := inBatch[source.Location]; dup {
			result.Skipped++
			continue
		}
		if ing.Seen != nil && ing.Seen.Seen(source.Location) {
			result.Skipped++
			continue
		}
		inBatch[source.Location] = struct{}{}
		pending = append(pending, source)
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan sourceResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range pending {
			i, source := i, source
			g.Go(func() error {
				resultCh <- ing.processSource(gctx, i, source)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	ordered := make([]sourceResult, total)
	for res := range resultCh {
		completed.Add(1)
		ordered[res.position] = res

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			SourceID:  res.source.ID,
			Location:  res.source.Location,
		}
		if res.err != nil {
			event.Type = ProgressFailed
			event.Err = res.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	// Persist in input order so re-runs produce stable stores.
	for _, res := range ordered {
		if res.err != nil {
			result.Failed++
			continue
		}

		saveFailed := false
		for i := range res.sections {
			section := &res.sections[i]
			meta := ing.Parser.GenerateMetadata(section, res.source.ID, basePath(res.source))
			if err := ing.Store.SaveSection(ctx, meta, section); err != nil {
				saveFailed = true
				break
			}
			result.Sections++
			result.Bytes += len(section.Content)
		}
		if saveFailed {
			result.Failed++
			continue
		}
		result.Saved++

		// Only fully processed locations are remembered, so a failed
		// source can be retried through the same Ingestor.
		if ing.Seen != nil {
			ing.Seen.Add(res.source.Location)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// processSource fetches and parses one source.
func (ing *Ingestor) processSource(ctx context.Context, position int, source *cardanomcp.DocumentationSource) sourceResult {
	res := sourceResult{position: position, source: source}

	if err := source.Validate(); err != nil {
		res.err = err
		return res
	}

	if ing.Limiter != nil {
		if host := locationHost(source.Location); host != "" {
			if err := ing.Limiter.Wait(ctx, host); err != nil {
				res.err = err
				return res
			}
		}
	}

	fetched, err := ing.Fetcher.Fetch(ctx, source)
	if err != nil {
		res.err = err
		return res
	}
	if err := cardanomcp.ValidateContent(fetched); err != nil {
		res.err = err
		return res
	}

	if isMarkdown(source, fetched) {
		res.sections, res.err = ing.Parser.ParseMarkdown(fetched.Content)
	} else {
		res.sections, res.err = ing.Parser.ParseHTML(fetched.Content)
	}
	return res
}

// isMarkdown routes content to the Markdown path based on content type and
// location extension.
func isMarkdown(source *cardanomcp.DocumentationSource, fetched *cardanomcp.FetchResult) bool {
	if strings.Contains(strings.ToLower(fetched.ContentType), "markdown") {
		return true
	}
	loc := strings.ToLower(source.Location)
	return strings.HasSuffix(loc, ".md") || strings.HasSuffix(loc, ".markdown")
}

// basePath derives the metadata path prefix from the source location.
func basePath(source *cardanomcp.DocumentationSource) string {
	if parsed, err := url.Parse(source.Location); err == nil && parsed.Path != "" {
		return parsed.Path
	}
	return source.Location
}

func locationHost(location string) string {
	parsed, err := url.Parse(location)
	if err != nil {
		return ""
	}
	return parsed.Host
}
