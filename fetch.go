package cardanomcp

import (
	"context"
	"net/http"
	"time"
)

// FetchResult holds the raw outcome of one successful fetch. It is consumed
// once by the parser and not persisted.
type FetchResult struct {
	Content     string            `json:"content"`
	ContentType string            `json:"contentType"`
	StatusCode  int               `json:"statusCode"`
	Headers     map[string]string `json:"headers"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Fetcher retrieves raw documentation content from a source location.
// Implementations bound concurrency and retry transient failures.
type Fetcher interface {
	// Fetch retrieves the content at the source's location.
	// The context controls cancellation; each attempt is separately
	// time-boxed by the implementation's timeout.
	Fetch(ctx context.Context, source *DocumentationSource) (*FetchResult, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ValidateContent checks a fetch result received from elsewhere. It is
// independent of fetch-time retry classification: it fails with
// EEMPTYCONTENT when the content is empty and EUNEXPECTEDSTATUS when the
// status is not 200.
func ValidateContent(result *FetchResult) error {
	if result == nil {
		return Errorf(EINVALID, "nil fetch result")
	}
	if result.Content == "" {
		return Errorf(EEMPTYCONTENT, "fetch result has empty content")
	}
	if result.StatusCode != http.StatusOK {
		return Errorf(EUNEXPECTEDSTATUS, "unexpected status %d", result.StatusCode)
	}
	return nil
}
