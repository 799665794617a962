// FILE: metaopt/block_test.go
package metaopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlock tests the ordered Meta block
func TestBlock(t *testing.T) {
	t.Run("SetGetOrder", func(t *testing.T) {
		block := NewBlock().
			Set("table", "users").
			Set("lazy", false).
			Set("pk", "id")

		assert.Equal(t, []string{"table", "lazy", "pk"}, block.Keys())
		assert.Equal(t, 3, block.Len())
		assert.True(t, block.Has("lazy"))

		v, ok := block.Get("table")
		require.True(t, ok)
		assert.Equal(t, "users", v)

		// Re-setting keeps position, updates value
		block.Set("table", "accounts")
		assert.Equal(t, []string{"table", "lazy", "pk"}, block.Keys())
		v, _ = block.Get("table")
		assert.Equal(t, "accounts", v)
	})

	t.Run("Debug", func(t *testing.T) {
		block := NewBlock().Set("table", "users")
		assert.Equal(t, `<Block options=[table]>`, block.String())
	})
}

// TestParseBlock tests TOML ingestion of Meta blocks
func TestParseBlock(t *testing.T) {
	t.Run("ValuesAndOrder", func(t *testing.T) {
		block, err := ParseBlock([]byte(`
table = "users"
lazy = false
max_rows = 500
`))
		require.NoError(t, err)

		assert.Equal(t, []string{"table", "lazy", "max_rows"}, block.Keys())

		table, _ := block.Get("table")
		assert.Equal(t, "users", table)
		lazy, _ := block.Get("lazy")
		assert.Equal(t, false, lazy)
		maxRows, _ := block.Get("max_rows")
		assert.Equal(t, int64(500), maxRows)
	})

	t.Run("NestedTables", func(t *testing.T) {
		block, err := ParseBlock([]byte(`
table = "users"

[indexes]
email = true
`))
		require.NoError(t, err)

		assert.Equal(t, []string{"table", "indexes"}, block.Keys())
		indexes, ok := block.Get("indexes")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"email": true}, indexes)
	})

	t.Run("DottedKeys", func(t *testing.T) {
		block, err := ParseBlock([]byte(`
indexes.email = true
indexes.name = false
table = "users"
`))
		require.NoError(t, err)

		// The first segment of a dotted key names the option; first
		// appearance sets the position.
		assert.Equal(t, []string{"indexes", "table"}, block.Keys())
		indexes, ok := block.Get("indexes")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"email": true, "name": false}, indexes)
	})

	t.Run("Empty", func(t *testing.T) {
		block, err := ParseBlock(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, block.Len())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseBlock([]byte(`table = `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse meta block")
	})
}
