package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/mock"
	cmslog "github.com/Jimmyh-world/Cardano-MCP-sub001/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with status, bytes, and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, source *cardanomcp.DocumentationSource) (*cardanomcp.FetchResult, error) {
				return &cardanomcp.FetchResult{
					Content:     "<html>content</html>",
					ContentType: "text/html",
					StatusCode:  200,
				}, nil
			},
		}

		fetcher := cmslog.NewLoggingFetcher(inner, logger)
		result, err := fetcher.Fetch(context.Background(), &cardanomcp.DocumentationSource{
			ID:       "cardano-docs",
			Location: "https://docs.cardano.org/learn",
			Type:     cardanomcp.SourceTypeWeb,
		})

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", result.Content)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://docs.cardano.org/learn")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error with code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, source *cardanomcp.DocumentationSource) (*cardanomcp.FetchResult, error) {
				return nil, cardanomcp.Errorf(cardanomcp.ENETWORK, "connection refused")
			},
		}

		fetcher := cmslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), &cardanomcp.DocumentationSource{
			ID:       "cardano-docs",
			Location: "https://docs.cardano.org/learn",
			Type:     cardanomcp.SourceTypeWeb,
		})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "code=network")
		assert.Contains(t, output, "connection refused")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := cmslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}
