// Package slog provides logging decorators for pipeline services.
package slog

import (
	"context"
	"log/slog"
	"time"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

// Ensure LoggingFetcher implements cardanomcp.Fetcher.
var _ cardanomcp.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of each fetch.
type LoggingFetcher struct {
	next   cardanomcp.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next cardanomcp.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, source *cardanomcp.DocumentationSource) (*cardanomcp.FetchResult, error) {
	begin := time.Now()
	result, err := f.next.Fetch(ctx, source)
	if err != nil {
		f.logger.Error("fetch",
			"url", source.Location,
			"code", cardanomcp.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", source.Location,
		"status", result.StatusCode,
		"bytes", len(result.Content),
		"duration", time.Since(begin),
	)
	return result, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
