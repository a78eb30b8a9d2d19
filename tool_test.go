package cardanomcp_test

import (
	"context"
	"testing"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(_ context.Context, _ map[string]any) (string, error) {
	return "", nil
}

func TestToolRegistry(t *testing.T) {
	t.Parallel()

	t.Run("registers and retrieves a tool", func(t *testing.T) {
		t.Parallel()

		registry := cardanomcp.NewToolRegistry()
		err := registry.Register(cardanomcp.Tool{
			Name:        "verify-script",
			Description: "Structural check for a Plutus script envelope",
			Handler:     noopHandler,
		})
		require.NoError(t, err)

		tool, ok := registry.Get("verify-script")
		require.True(t, ok)
		assert.Equal(t, "verify-script", tool.Name)
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		t.Parallel()

		registry := cardanomcp.NewToolRegistry()
		require.NoError(t, registry.Register(cardanomcp.Tool{Name: "check-utxo", Handler: noopHandler}))

		err := registry.Register(cardanomcp.Tool{Name: "check-utxo", Handler: noopHandler})
		require.Error(t, err)
		assert.Equal(t, cardanomcp.ECONFLICT, cardanomcp.ErrorCode(err))
	})

	t.Run("rejects missing name or handler", func(t *testing.T) {
		t.Parallel()

		registry := cardanomcp.NewToolRegistry()

		err := registry.Register(cardanomcp.Tool{Handler: noopHandler})
		require.Error(t, err)
		assert.Equal(t, cardanomcp.EINVALID, cardanomcp.ErrorCode(err))

		err = registry.Register(cardanomcp.Tool{Name: "no-handler"})
		require.Error(t, err)
		assert.Equal(t, cardanomcp.EINVALID, cardanomcp.ErrorCode(err))
	})

	t.Run("lists tools sorted by name", func(t *testing.T) {
		t.Parallel()

		registry := cardanomcp.NewToolRegistry()
		require.NoError(t, registry.Register(cardanomcp.Tool{Name: "zeta", Handler: noopHandler}))
		require.NoError(t, registry.Register(cardanomcp.Tool{Name: "alpha", Handler: noopHandler}))

		tools := registry.List()
		require.Len(t, tools, 2)
		assert.Equal(t, "alpha", tools[0].Name)
		assert.Equal(t, "zeta", tools[1].Name)
	})
}
