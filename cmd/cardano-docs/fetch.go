package main

import (
	"fmt"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/goquery"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/trafilatura"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	source := &cardanomcp.DocumentationSource{
		ID:       "preview",
		Location: c.URL,
		Type:     cardanomcp.SourceTypeWeb,
	}

	result, err := deps.Fetcher.Fetch(deps.Ctx, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
		return err
	}
	if err := cardanomcp.ValidateContent(result); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
		return err
	}

	if c.Main {
		text, err := trafilatura.NewExtractor().ExtractMainContent(result.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}

	if c.Text {
		text, err := goquery.NewCleaner().ExtractTextContent(result.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}

	fmt.Fprintln(deps.Stdout, result.Content)
	return nil
}
