package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/picket-dev/picket/internal/adapter"
	"github.com/picket-dev/picket/internal/controller/mocks"
	m "github.com/picket-dev/picket/internal/model"
)

const workflowManifest = `{
  "nodes": [
    {"unique_id": "model.shop.raw", "name": "raw", "kind": "model", "tags": ["bronze"], "path": "models/raw.sql"},
    {"unique_id": "model.shop.staging", "name": "staging", "kind": "model", "tags": ["silver"], "path": "models/staging.sql", "depends_on": ["model.shop.raw"]},
    {"unique_id": "model.shop.mart", "name": "mart", "kind": "model", "tags": ["gold"], "path": "models/mart.sql", "depends_on": ["model.shop.staging"]}
  ]
}`

const workflowSelectors = `
selectors:
  - name: downstream
    definition: "staging+"
  - name: everything
    default: true
    definition: "kind:model"
`

func writeWorkflowFixtures(t *testing.T) (m.Path, m.Path) {
	t.Helper()

	dir := t.TempDir()

	manifestPath := filepath.Join(dir, "manifest.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(workflowManifest), 0o600))

	selectorsPath := filepath.Join(dir, "selectors.yml")
	require.NoError(t, os.WriteFile(selectorsPath, []byte(workflowSelectors), 0o600))

	return m.Path(manifestPath), m.Path(selectorsPath)
}

func newTestWorkflow(t *testing.T) (Workflow, *mocks.MockUI) {
	t.Helper()

	ui := mocks.NewMockUI(t)
	w := NewWorkflow(adapter.NewManifestStore(), adapter.NewSelectorStore(), ui)

	return w, ui
}

func TestWorkflow_Select(t *testing.T) {
	manifestPath, selectorsPath := writeWorkflowFixtures(t)

	t.Run("specifiers with exclude", func(t *testing.T) {
		w, ui := newTestWorkflow(t)

		ui.EXPECT().DisplayWarnings([]string(nil)).Return()
		ui.EXPECT().DisplayIDs([]string{"model.shop.raw", "model.shop.mart"}).Return(nil)

		err := w.Select(context.Background(), SelectArgs{
			Manifest:  manifestPath,
			Selectors: selectorsPath,
			Select:    []string{"kind:model"},
			Exclude:   []string{"tag:silver"},
			IDsOnly:   true,
		})
		require.NoError(t, err)
	})

	t.Run("exclude matching nothing removes nothing", func(t *testing.T) {
		w, ui := newTestWorkflow(t)

		ui.EXPECT().DisplayWarnings([]string(nil)).Return()
		ui.EXPECT().DisplayIDs([]string{"model.shop.raw", "model.shop.staging", "model.shop.mart"}).Return(nil)

		err := w.Select(context.Background(), SelectArgs{
			Manifest:  manifestPath,
			Selectors: selectorsPath,
			Select:    []string{"kind:model"},
			Exclude:   []string{"tag:no_such_tag"},
			IDsOnly:   true,
		})
		require.NoError(t, err)
	})

	t.Run("named selector with graph operator", func(t *testing.T) {
		w, ui := newTestWorkflow(t)

		ui.EXPECT().DisplayWarnings([]string(nil)).Return()
		ui.EXPECT().DisplayIDs([]string{"model.shop.staging", "model.shop.mart"}).Return(nil)

		err := w.Select(context.Background(), SelectArgs{
			Manifest:  manifestPath,
			Selectors: selectorsPath,
			Selector:  "downstream",
			IDsOnly:   true,
		})
		require.NoError(t, err)
	})

	t.Run("default selector applies when nothing is given", func(t *testing.T) {
		w, ui := newTestWorkflow(t)

		ui.EXPECT().DisplayWarnings([]string(nil)).Return()
		ui.EXPECT().DisplayIDs([]string{"model.shop.raw", "model.shop.staging", "model.shop.mart"}).Return(nil)

		err := w.Select(context.Background(), SelectArgs{
			Manifest:  manifestPath,
			Selectors: selectorsPath,
			IDsOnly:   true,
		})
		require.NoError(t, err)
	})

	t.Run("missing selectors file selects everything", func(t *testing.T) {
		w, ui := newTestWorkflow(t)

		ui.EXPECT().DisplayWarnings([]string(nil)).Return()
		ui.EXPECT().DisplayIDs([]string{"model.shop.raw", "model.shop.staging", "model.shop.mart"}).Return(nil)

		err := w.Select(context.Background(), SelectArgs{
			Manifest:  manifestPath,
			Selectors: m.Path(filepath.Join(t.TempDir(), "absent.yml")),
			IDsOnly:   true,
		})
		require.NoError(t, err)
	})

	t.Run("unknown selector name fails", func(t *testing.T) {
		w, ui := newTestWorkflow(t)
		_ = ui

		err := w.Select(context.Background(), SelectArgs{
			Manifest:  manifestPath,
			Selectors: selectorsPath,
			Selector:  "no_such_selector",
		})
		assert.ErrorIs(t, err, ErrUnknownSelector)
	})

	t.Run("full nodes go through DisplayNodes", func(t *testing.T) {
		w, ui := newTestWorkflow(t)

		ui.EXPECT().DisplayWarnings([]string(nil)).Return()
		ui.EXPECT().DisplayNodes(mock.Anything, 3).RunAndReturn(func(nodes []m.Node, _ int) error {
			assert.Len(t, nodes, 1)
			assert.Equal(t, "model.shop.mart", nodes[0].UniqueID)

			return nil
		})

		err := w.Select(context.Background(), SelectArgs{
			Manifest:  manifestPath,
			Selectors: selectorsPath,
			Select:    []string{"tag:gold"},
		})
		require.NoError(t, err)
	})
}

func TestWorkflow_List(t *testing.T) {
	manifestPath, _ := writeWorkflowFixtures(t)

	w, ui := newTestWorkflow(t)

	ui.EXPECT().DisplayNodes(mock.Anything, 3).RunAndReturn(func(nodes []m.Node, _ int) error {
		assert.Len(t, nodes, 3)

		return nil
	})

	err := w.List(context.Background(), ListArgs{Manifest: manifestPath})
	require.NoError(t, err)
}

func TestWorkflow_View(t *testing.T) {
	manifestPath, selectorsPath := writeWorkflowFixtures(t)

	w, ui := newTestWorkflow(t)

	ui.EXPECT().DisplayWarnings([]string(nil)).Return()
	ui.EXPECT().Browse("tag:gold", mock.Anything).RunAndReturn(func(_ string, nodes []m.Node) error {
		assert.Len(t, nodes, 1)

		return nil
	})

	err := w.View(context.Background(), ViewArgs{
		Manifest:  manifestPath,
		Selectors: selectorsPath,
		Select:    []string{"tag:gold"},
	})
	require.NoError(t, err)
}
