package main

import (
	"fmt"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return cardanomcp.Errorf(cardanomcp.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Sources.DeleteSource(deps.Ctx, c.ID); err != nil {
		if cardanomcp.ErrorCode(err) == cardanomcp.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'cardano-docs list' to see registered sources.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cardanomcp.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted source %q\n", c.ID)
	return nil
}
