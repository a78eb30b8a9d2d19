package cardanomcp

import (
	"strings"
	"unicode"
)

// ParsedSection is one heading-delimited unit of normalized documentation.
// Sections are flat: a parent heading's content excludes text that falls
// under a later sub-heading.
type ParsedSection struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CodeBlocks []string `json:"codeBlocks"`
	Level      int      `json:"level"`
	// OriginalHTML carries the section's source HTML span. Present only
	// when formatting preservation is configured.
	OriginalHTML string `json:"originalHtml,omitempty"`
}

// Validate returns an error if the section contains invalid fields.
func (s *ParsedSection) Validate() error {
	if s.Level < 1 || s.Level > 6 {
		return Errorf(EINVALID, "section level %d out of range [1,6]", s.Level)
	}
	if s.Title == "" {
		return Errorf(EINVALID, "section title required")
	}
	return nil
}

// DocumentationMetadata is the stable, per-section record emitted for the
// knowledge-base stage. It is owned by the caller and never mutated after
// creation.
type DocumentationMetadata struct {
	ID       string   `json:"id"`
	SourceID string   `json:"sourceId"`
	Title    string   `json:"title"`
	Path     string   `json:"path"`
	// Order is a coarse rank (level * 1000), not a total order; sibling
	// sections at the same level share the same value.
	Order  int      `json:"order"`
	Topics []string `json:"topics"`
}

// ExtractConfig controls section extraction.
type ExtractConfig struct {
	// CustomSelectors are additional CSS selectors that open section
	// boundaries, at rank 1 unless the matched element is itself a heading.
	CustomSelectors []string

	// MinContentLength drops sections whose trimmed body text is shorter.
	// Silent filtering, not an error.
	MinContentLength int

	// MaxTitleLength drops sections whose heading text is longer.
	MaxTitleLength int

	// ExtractCodeBlocks collects <pre><code> blocks into CodeBlocks.
	ExtractCodeBlocks bool

	// PreserveFormatting captures each section's source HTML span.
	PreserveFormatting bool
}

// SectionExtractor segments validated HTML into ordered sections.
type SectionExtractor interface {
	// ExtractSections scans the document in source order. Empty input or
	// input with no boundary elements returns an empty slice, not an error.
	ExtractSections(html string, cfg ExtractConfig) ([]ParsedSection, error)
}

// Slug derives a normalized, URL-safe, lowercase identifier from free text.
// It lowercases, strips characters outside [a-z0-9- ], collapses whitespace
// runs to single hyphens, and trims leading/trailing hyphens. Slug is
// idempotent: Slug(Slug(x)) == Slug(x).
func Slug(s string) string {
	var sb strings.Builder
	prevSpace := false

	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			sb.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r):
			if !prevSpace {
				sb.WriteRune('-')
			}
			prevSpace = true
		}
	}

	return strings.Trim(sb.String(), "-")
}

// titleStopwords are filtered out of topic keywords.
var titleStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "how": {}, "in": {}, "is": {}, "it": {},
	"of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "this": {},
	"to": {}, "what": {}, "when": {}, "where": {}, "which": {}, "with": {},
	"your": {},
}

// TitleTopics extracts deduplicated, stopword-filtered lowercase keywords
// from a section title, preserving first-occurrence order.
func TitleTopics(title string) []string {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(words))
	topics := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := titleStopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		topics = append(topics, w)
	}

	return topics
}
