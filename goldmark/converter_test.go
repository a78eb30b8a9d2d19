package goldmark_test

import (
	"testing"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	mcpgoldmark "github.com/Jimmyh-world/Cardano-MCP-sub001/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_ConvertToHTML(t *testing.T) {
	t.Parallel()

	t.Run("renders headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		converter := mcpgoldmark.NewConverter()
		html, err := converter.ConvertToHTML("# Ouroboros\n\nProof of stake protocol.")

		require.NoError(t, err)
		assert.Contains(t, html, "<h1>Ouroboros</h1>")
		assert.Contains(t, html, "<p>Proof of stake protocol.</p>")
	})

	t.Run("renders fenced code blocks as pre code", func(t *testing.T) {
		t.Parallel()

		converter := mcpgoldmark.NewConverter()
		html, err := converter.ConvertToHTML("# Example\n\n```go\nx := 1\n```\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<pre><code")
		assert.Contains(t, html, "x := 1")
	})

	t.Run("renders task lists as unordered lists", func(t *testing.T) {
		t.Parallel()

		converter := mcpgoldmark.NewConverter()
		html, err := converter.ConvertToHTML("# Checklist\n\n- [x] sync node\n- [ ] delegate stake\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<ul>")
		assert.Contains(t, html, "<li>")
		assert.Contains(t, html, `type="checkbox"`)
	})

	t.Run("fails on empty input", func(t *testing.T) {
		t.Parallel()

		converter := mcpgoldmark.NewConverter()
		_, err := converter.ConvertToHTML("   ")

		require.Error(t, err)
		assert.Equal(t, cardanomcp.EINVALID, cardanomcp.ErrorCode(err))
	})
}

func TestConverter_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts markdown with any heading depth", func(t *testing.T) {
		t.Parallel()

		converter := mcpgoldmark.NewConverter()

		require.NoError(t, converter.Validate("# H1"))
		require.NoError(t, converter.Validate("intro text\n\n###### Deep Heading\nbody"))
	})

	t.Run("fails on empty input", func(t *testing.T) {
		t.Parallel()

		converter := mcpgoldmark.NewConverter()
		err := converter.Validate("")

		require.Error(t, err)
		assert.Equal(t, cardanomcp.EINVALID, cardanomcp.ErrorCode(err))
	})

	t.Run("fails when no heading marker exists", func(t *testing.T) {
		t.Parallel()

		converter := mcpgoldmark.NewConverter()
		err := converter.Validate("plain text, no heading")

		require.Error(t, err)
		assert.Equal(t, cardanomcp.ENOHEADINGS, cardanomcp.ErrorCode(err))
	})
}
