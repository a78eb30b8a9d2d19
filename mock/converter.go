package mock

import cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"

var _ cardanomcp.MarkdownConverter = (*MarkdownConverter)(nil)

// MarkdownConverter is a mock implementation of cardanomcp.MarkdownConverter.
type MarkdownConverter struct {
	ConvertToHTMLFn func(markdown string) (string, error)
	ValidateFn      func(markdown string) error
}

func (c *MarkdownConverter) ConvertToHTML(markdown string) (string, error) {
	return c.ConvertToHTMLFn(markdown)
}

func (c *MarkdownConverter) Validate(markdown string) error {
	return c.ValidateFn(markdown)
}
