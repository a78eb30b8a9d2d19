package main

import (
	"fmt"
	"regexp"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	var urlFilter *cardanomcp.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &cardanomcp.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	// Preview mode: show discovered URLs without registering
	if c.Preview {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Location, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	// Force mode: delete existing source first
	if c.Force {
		if _, err := deps.Sources.FindSourceByID(deps.Ctx, c.ID); err == nil {
			if err := deps.Sources.DeleteSource(deps.Ctx, c.ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
				return err
			}
		}
	}

	source := &cardanomcp.DocumentationSource{
		ID:       c.ID,
		Location: c.Location,
		Type:     cardanomcp.SourceType(c.Type),
		Version:  c.Version,
	}

	if err := deps.Sources.AddSource(deps.Ctx, source); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added source %q (%s)\n", source.ID, source.Location)

	batch := []*cardanomcp.DocumentationSource{source}

	// Discover mode: expand a web source into its sitemap pages
	if c.Discover && source.Type == cardanomcp.SourceTypeWeb {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Location, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
			return err
		}
		if len(urls) > 0 {
			batch = batch[:0]
			for _, u := range urls {
				batch = append(batch, &cardanomcp.DocumentationSource{
					ID:       source.ID,
					Location: u,
					Type:     cardanomcp.SourceTypeWeb,
					Version:  source.Version,
				})
			}
		}
	}

	return runIngest(deps, source.ID, batch, c.Concurrency)
}
