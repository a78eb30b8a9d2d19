// Package goldmark provides the Markdown processor used for Markdown
// documentation sources.
package goldmark

import (
	"bytes"
	"regexp"
	"strings"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Ensure Converter implements cardanomcp.MarkdownConverter at compile time.
var _ cardanomcp.MarkdownConverter = (*Converter)(nil)

// headingRe matches an ATX heading marker (# through ######) anywhere in
// the document.
var headingRe = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)

// Converter renders Markdown to HTML with GitHub-flavored extensions.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// ConvertToHTML renders the Markdown input as HTML. Headings become
// <h1>-<h6>, fenced code blocks become <pre><code>, and task lists become
// <ul><li> with checkbox inputs.
func (c *Converter) ConvertToHTML(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", cardanomcp.Errorf(cardanomcp.EINVALID, "empty markdown input")
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", &cardanomcp.Error{
			Code:    cardanomcp.EINTERNAL,
			Message: "markdown conversion failed",
			Err:     err,
		}
	}
	return buf.String(), nil
}

// Validate checks that the input is non-empty and contains at least one
// heading marker.
func (c *Converter) Validate(markdown string) error {
	if strings.TrimSpace(markdown) == "" {
		return cardanomcp.Errorf(cardanomcp.EINVALID, "empty markdown input")
	}
	if !headingRe.MatchString(markdown) {
		return cardanomcp.Errorf(cardanomcp.ENOHEADINGS, "no headings found")
	}
	return nil
}
