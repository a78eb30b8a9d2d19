// Package parse provides the documentation parsing orchestrator. It picks
// the HTML or Markdown path, enforces size thresholds, and derives stable
// per-section metadata.
package parse

import (
	"strings"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

// Config holds the parser's thresholds and extraction switches.
type Config struct {
	MaxTitleLength     int
	MinContentLength   int
	ExtractCodeBlocks  bool
	PreserveFormatting bool
	CustomSelectors    []string
}

// DefaultConfig returns the parser defaults: code block extraction on,
// generous title limit, no minimum content length.
func DefaultConfig() Config {
	return Config{
		MaxTitleLength:    200,
		ExtractCodeBlocks: true,
	}
}

// Parser orchestrates validation, cleaning, and section extraction.
type Parser struct {
	Cleaner  cardanomcp.Cleaner
	Sections cardanomcp.SectionExtractor
	Markdown cardanomcp.MarkdownConverter

	// AllowedTags overrides the default validation whitelist when set.
	AllowedTags []string

	Config Config
}

// ParseHTML validates the input with the full rule set, strips noise, and
// extracts sections with the parser's thresholds. Validator errors
// propagate with their specific code.
func (p *Parser) ParseHTML(rawHTML string) ([]cardanomcp.ParsedSection, error) {
	var opts []cardanomcp.ValidateOption
	if p.AllowedTags != nil {
		opts = append(opts, cardanomcp.WithAllowedTags(p.AllowedTags...))
	}
	if err := cardanomcp.ValidateHTML(rawHTML, opts...); err != nil {
		return nil, &cardanomcp.Error{
			Code:    cardanomcp.ErrorCode(err),
			Message: "documentation parse failed: " + cardanomcp.ErrorMessage(err),
			Err:     err,
		}
	}

	cleaned := rawHTML
	if p.Cleaner != nil {
		out, err := p.Cleaner.CleanHTML(rawHTML)
		if err != nil {
			return nil, err
		}
		cleaned = out
	}

	return p.Sections.ExtractSections(cleaned, cardanomcp.ExtractConfig{
		CustomSelectors:    p.Config.CustomSelectors,
		MinContentLength:   p.Config.MinContentLength,
		MaxTitleLength:     p.Config.MaxTitleLength,
		ExtractCodeBlocks:  p.Config.ExtractCodeBlocks,
		PreserveFormatting: p.Config.PreserveFormatting,
	})
}

// ParseMarkdown converts Markdown to HTML and parses it. Empty or
// whitespace-only input returns an empty sequence without error; non-empty
// input without headings fails with ENOHEADINGS.
func (p *Parser) ParseMarkdown(markdown string) ([]cardanomcp.ParsedSection, error) {
	if strings.TrimSpace(markdown) == "" {
		return []cardanomcp.ParsedSection{}, nil
	}
	if err := p.Markdown.Validate(markdown); err != nil {
		return nil, err
	}

	rendered, err := p.Markdown.ConvertToHTML(markdown)
	if err != nil {
		return nil, err
	}

	return p.ParseHTML(rendered)
}

// GenerateMetadata derives the stable per-section record. IDs are
// URL-safe slugs, unique per source after normalization; the order value
// is a coarse rank (level * 1000), so sibling sections at the same level
// share it.
func (p *Parser) GenerateMetadata(section *cardanomcp.ParsedSection, sourceID, basePath string) *cardanomcp.DocumentationMetadata {
	titleSlug := cardanomcp.Slug(section.Title)
	return &cardanomcp.DocumentationMetadata{
		ID:       cardanomcp.Slug(sourceID + "-" + titleSlug),
		SourceID: sourceID,
		Title:    section.Title,
		Path:     basePath + "#" + titleSlug,
		Order:    section.Level * 1000,
		Topics:   cardanomcp.TitleTopics(section.Title),
	}
}
