// Package goquery provides element-tree based implementations of the
// content cleaner and section extractor.
package goquery

import (
	"regexp"
	"strings"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/PuerkitoBio/goquery"
)

// Ensure Cleaner implements cardanomcp.Cleaner at compile time.
var _ cardanomcp.Cleaner = (*Cleaner)(nil)

// Whole-block removal; nested blocks or "</script"-like text inside quoted
// attributes are not handled. Openers left without a close tag are cut to
// end of input by openScriptRe/openStyleRe.
var (
	commentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
	scriptRe     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleRe      = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	openScriptRe = regexp.MustCompile(`(?is)<script\b.*$`)
	openStyleRe  = regexp.MustCompile(`(?is)<style\b.*$`)
)

// Cleaner strips noise from HTML and extracts text content.
type Cleaner struct {
	removeSelectors []string
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithRemoveSelectors replaces the default noise removal selector list.
func WithRemoveSelectors(selectors ...string) CleanerOption {
	return func(c *Cleaner) {
		c.removeSelectors = selectors
	}
}

// NewCleaner creates a Cleaner with the default removal list.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{
		removeSelectors: cardanomcp.DefaultRemoveSelectors,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CleanHTML removes HTML comments and whole <script>/<style> blocks,
// leaving the rest structurally unchanged. A block whose close tag is
// missing is stripped from its opener to end of input, so no script or
// style content ever survives. Empty or whitespace-only input is returned
// unchanged.
func (c *Cleaner) CleanHTML(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return html, nil
	}

	out := commentRe.ReplaceAllString(html, "")
	out = scriptRe.ReplaceAllString(out, "")
	out = styleRe.ReplaceAllString(out, "")
	out = openScriptRe.ReplaceAllString(out, "")
	out = openStyleRe.ReplaceAllString(out, "")
	return out, nil
}

// ExtractTextContent parses the HTML, removes noise elements, and returns
// the trimmed concatenated text with entities decoded.
func (c *Cleaner) ExtractTextContent(html string) (string, error) {
	if html == "" {
		return "", cardanomcp.Errorf(cardanomcp.EINVALID, "empty HTML input")
	}

	doc, err := c.parse(html)
	if err != nil {
		return "", err
	}
	c.removeNoise(doc)

	return strings.TrimSpace(doc.Text()), nil
}

// ExtractMainContent removes noise elements and returns the trimmed text
// of the first non-empty element among main, article, and body.
func (c *Cleaner) ExtractMainContent(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", cardanomcp.Errorf(cardanomcp.EINVALID, "empty HTML input")
	}

	doc, err := c.parse(html)
	if err != nil {
		return "", err
	}
	c.removeNoise(doc)

	for _, selector := range []string{"main", "article", "body"} {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text, nil
		}
	}
	return "", cardanomcp.Errorf(cardanomcp.ENOTFOUND, "no main content found")
}

func (c *Cleaner) parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &cardanomcp.Error{
			Code:    cardanomcp.EINVALID,
			Message: "failed to parse HTML: " + truncate(html, 60),
			Err:     err,
		}
	}
	return doc, nil
}

func (c *Cleaner) removeNoise(doc *goquery.Document) {
	if len(c.removeSelectors) == 0 {
		return
	}
	doc.Find(strings.Join(c.removeSelectors, ", ")).Remove()
}

// truncate shortens input for inclusion in error messages.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
