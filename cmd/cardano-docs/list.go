package main

import (
	"fmt"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := cardanomcp.SourceFilter{}
	if c.Type != "" {
		sourceType := cardanomcp.SourceType(c.Type)
		filter.Type = &sourceType
	}

	sources, err := deps.Sources.FindSources(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'cardano-docs add' to register one.")
		return nil
	}

	for _, s := range sources {
		fetched := "never"
		if s.LastFetched != nil {
			fetched = s.LastFetched.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  fetched: %s\n", s.ID, s.Type, s.Location, fetched)
	}

	return nil
}
