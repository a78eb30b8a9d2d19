package main

import (
	"fmt"
	"strings"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	if _, err := deps.Sources.FindSourceByID(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'cardano-docs list' to see registered sources.\n", c.ID)
		return err
	}

	metas, err := deps.Sections.FindMetadataBySource(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
		return err
	}

	if len(metas) == 0 {
		fmt.Fprintf(deps.Stderr, "error: source %q has no indexed sections. Run 'cardano-docs ingest %s' first.\n", c.ID, c.ID)
		return cardanomcp.Errorf(cardanomcp.ENOTFOUND, "source %q has no indexed sections", c.ID)
	}

	if c.Full {
		for _, meta := range metas {
			indexed, err := deps.Sections.FindSectionByID(deps.Ctx, meta.ID)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "%s %s\n\n%s\n\n", strings.Repeat("#", indexed.Section.Level), indexed.Metadata.Title, indexed.Section.Content)
			for _, code := range indexed.Section.CodeBlocks {
				fmt.Fprintf(deps.Stdout, "```\n%s\n```\n\n", code)
			}
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Sections for %s (%d total):\n\n", c.ID, len(metas))
	for i, meta := range metas {
		topics := ""
		if len(meta.Topics) > 0 {
			topics = "  [" + strings.Join(meta.Topics, ", ") + "]"
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s%s\n     %s\n", i+1, meta.Title, topics, meta.Path)
	}

	return nil
}
