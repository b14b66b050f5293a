package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/picket-dev/picket/internal/model"
)

func writeFile(t *testing.T, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestManifestStore_LoadUniverse(t *testing.T) {
	store := NewManifestStore()

	t.Run("loads nodes with attributes and edges", func(t *testing.T) {
		path := writeFile(t, "manifest.json", `{
  "nodes": [
    {
      "unique_id": "model.shop.orders",
      "name": "orders",
      "package_name": "shop",
      "path": "models/core/orders.sql",
      "fqn": ["shop", "core", "orders"],
      "tags": ["nightly"],
      "kind": "model"
    },
    {
      "unique_id": "model.shop.report",
      "name": "report",
      "kind": "model",
      "depends_on": ["model.shop.orders"]
    }
  ]
}`)

		universe, err := store.LoadUniverse(path)
		require.NoError(t, err)

		assert.Equal(t, 2, universe.Len())

		node := universe.Node(0)
		assert.Equal(t, "orders", node.Name)
		assert.Equal(t, "shop", node.PackageName)
		assert.Equal(t, []string{"shop", "core", "orders"}, node.FQN)
		assert.Equal(t, m.KindModel, node.Kind)

		assert.Equal(t, []int{0}, universe.Parents(1))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := store.LoadUniverse(m.Path(filepath.Join(t.TempDir(), "absent.json")))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeFile(t, "manifest.json", `{"nodes": [`)

		_, err := store.LoadUniverse(path)
		assert.Error(t, err)
	})

	t.Run("duplicate IDs are a construction error", func(t *testing.T) {
		path := writeFile(t, "manifest.json", `{
  "nodes": [
    {"unique_id": "model.a", "kind": "model"},
    {"unique_id": "model.a", "kind": "model"}
  ]
}`)

		_, err := store.LoadUniverse(path)
		assert.Error(t, err)
	})
}
