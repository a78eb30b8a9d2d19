package mock

import cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"

var _ cardanomcp.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of cardanomcp.Cleaner.
type Cleaner struct {
	CleanHTMLFn          func(html string) (string, error)
	ExtractTextContentFn func(html string) (string, error)
	ExtractMainContentFn func(html string) (string, error)
}

func (c *Cleaner) CleanHTML(html string) (string, error) {
	return c.CleanHTMLFn(html)
}

func (c *Cleaner) ExtractTextContent(html string) (string, error) {
	return c.ExtractTextContentFn(html)
}

func (c *Cleaner) ExtractMainContent(html string) (string, error) {
	return c.ExtractMainContentFn(html)
}
