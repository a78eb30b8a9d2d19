// Package trafilatura provides a library-driven main-content extractor
// for boilerplate-heavy real-world pages, as an alternative to the
// mechanical main/article/body selection in the goquery cleaner.
package trafilatura

import (
	"strings"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements cardanomcp.MainContentExtractor at compile time.
var _ cardanomcp.MainContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMainContent returns the main text of the page with boilerplate
// (navigation, sidebars, footers, ads) removed.
func (e *Extractor) ExtractMainContent(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", cardanomcp.Errorf(cardanomcp.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", &cardanomcp.Error{
			Code:    cardanomcp.EINTERNAL,
			Message: "content extraction failed",
			Err:     err,
		}
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", cardanomcp.Errorf(cardanomcp.ENOTFOUND, "no main content found")
	}
	return text, nil
}
