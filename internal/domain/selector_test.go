package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/picket-dev/picket/internal/model"
)

func parseSelectorsDoc(t *testing.T, doc string) *SelectorParser {
	t.Helper()

	var file m.SelectorsFile
	require.NoError(t, yaml.Unmarshal([]byte(doc), &file))

	return NewSelectorParser(file.Selectors)
}

func TestSelectorParser_StringDefinition(t *testing.T) {
	parser := parseSelectorsDoc(t, `
selectors:
  - name: nightly
    definition: "tag:nightly"
`)

	expr, err := parser.ParseNamed("nightly")
	require.NoError(t, err)

	criteria := requireAtom(t, expr)
	assert.Equal(t, m.MethodTag, criteria.Method)
	assert.Equal(t, "nightly", criteria.Value)
}

func TestSelectorParser_StringDefinitionWithMultipleSpecifiers(t *testing.T) {
	parser := parseSelectorsDoc(t, `
selectors:
  - name: both
    definition: "tag:daily tag:weekly"
`)

	expr, err := parser.ParseNamed("both")
	require.NoError(t, err)

	or, ok := expr.(m.Or)
	require.True(t, ok)
	assert.Len(t, or.Children, 2)
}

func TestSelectorParser_MethodExpression(t *testing.T) {
	parser := parseSelectorsDoc(t, `
selectors:
  - name: core
    definition:
      method: path
      value: models/core/*
      parents: true
      children_depth: 2
`)

	expr, err := parser.ParseNamed("core")
	require.NoError(t, err)

	criteria := requireAtom(t, expr)
	assert.Equal(t, m.MethodPath, criteria.Method)
	assert.Equal(t, "models/core/*", criteria.Value)
	assert.True(t, criteria.Parents)
	assert.True(t, criteria.Children, "a depth alone implies the traversal")
	assert.Equal(t, 2, criteria.ChildrenDepth)
}

func TestSelectorParser_MethodKeyShorthand(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: nightly
    definition:
      tag: nightly
`)

		expr, err := parser.ParseNamed("nightly")
		require.NoError(t, err)

		criteria := requireAtom(t, expr)
		assert.Equal(t, m.MethodTag, criteria.Method)
		assert.Equal(t, "nightly", criteria.Value)
	})

	t.Run("multiple pairs are rejected", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: broken
    definition:
      tag: nightly
      path: models/*
`)

		_, err := parser.ParseNamed("broken")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one")
	})

	t.Run("unknown method is rejected", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: broken
    definition:
      owner: alice
`)

		_, err := parser.ParseNamed("broken")
		assert.ErrorIs(t, err, ErrUnknownMethod)
	})
}

func TestSelectorParser_AtomNestedExclude(t *testing.T) {
	t.Run("single entry", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: stable
    definition:
      method: tag
      value: nightly
      exclude:
        - "tag:broken"
`)

		expr, err := parser.ParseNamed("stable")
		require.NoError(t, err)

		criteria := requireAtom(t, expr)
		require.NotNil(t, criteria.Exclude)

		excluded := requireAtom(t, criteria.Exclude)
		assert.Equal(t, "broken", excluded.Value)
	})

	t.Run("multiple entries unite", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: stable
    definition:
      method: tag
      value: nightly
      exclude:
        - "tag:broken"
        - "tag:slow"
`)

		expr, err := parser.ParseNamed("stable")
		require.NoError(t, err)

		criteria := requireAtom(t, expr)

		or, ok := criteria.Exclude.(m.Or)
		require.True(t, ok)
		assert.Len(t, or.Children, 2)
	})
}

func TestSelectorParser_TopLevelExcludeRejected(t *testing.T) {
	parser := parseSelectorsDoc(t, `
selectors:
  - name: broken
    definition:
      exclude:
        - "tag:deprecated"
`)

	_, err := parser.ParseNamed("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-level exclude")
}

func TestSelectorParser_Composites(t *testing.T) {
	t.Run("union", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: either
    definition:
      union:
        - "tag:daily"
        - "tag:weekly"
`)

		expr, err := parser.ParseNamed("either")
		require.NoError(t, err)

		or, ok := expr.(m.Or)
		require.True(t, ok)
		assert.Len(t, or.Children, 2)
	})

	t.Run("intersection", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: both
    definition:
      intersection:
        - "tag:core"
        - "kind:model"
`)

		expr, err := parser.ParseNamed("both")
		require.NoError(t, err)

		and, ok := expr.(m.And)
		require.True(t, ok)
		assert.Len(t, and.Children, 2)
	})

	t.Run("mixing union and intersection is rejected", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: broken
    definition:
      union:
        - "tag:a"
      intersection:
        - "tag:b"
`)

		_, err := parser.ParseNamed("broken")
		assert.Error(t, err)
	})
}

func TestSelectorParser_ExcludeHoisting(t *testing.T) {
	t.Run("exclude entry restricts the whole composite", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: scheduled
    definition:
      union:
        - "tag:daily"
        - "tag:weekly"
        - exclude:
            - "tag:deprecated"
`)

		expr, err := parser.ParseNamed("scheduled")
		require.NoError(t, err)

		and, ok := expr.(m.And)
		require.True(t, ok, "hoisted exclude wraps the composite in an intersection, got %T", expr)
		require.Len(t, and.Children, 2)

		include, ok := and.Children[0].(m.Or)
		require.True(t, ok)
		assert.Len(t, include.Children, 2)

		exclude, ok := and.Children[1].(m.Exclude)
		require.True(t, ok)

		excluded := requireAtom(t, exclude.Inner)
		assert.Equal(t, "deprecated", excluded.Value)
	})

	t.Run("multiple exclude entries merge into one union", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: scheduled
    definition:
      union:
        - "tag:daily"
        - exclude:
            - "tag:deprecated"
        - "tag:weekly"
        - exclude:
            - "tag:broken"
`)

		expr, err := parser.ParseNamed("scheduled")
		require.NoError(t, err)

		and, ok := expr.(m.And)
		require.True(t, ok)
		require.Len(t, and.Children, 2)

		exclude, ok := and.Children[1].(m.Exclude)
		require.True(t, ok)

		or, ok := exclude.Inner.(m.Or)
		require.True(t, ok)
		assert.Len(t, or.Children, 2)
	})
}

func TestSelectorParser_ExcludeHoistingEvaluates(t *testing.T) {
	u := newUniverse(t, []m.Node{
		{UniqueID: "daily_1", Tags: []string{"daily"}},
		{UniqueID: "daily_2", Tags: []string{"daily", "deprecated"}},
		{UniqueID: "weekly_1", Tags: []string{"weekly"}},
	})

	parser := parseSelectorsDoc(t, `
selectors:
  - name: scheduled
    definition:
      union:
        - "tag:daily"
        - "tag:weekly"
        - exclude:
            - "tag:deprecated"
`)

	expr, err := parser.ParseNamed("scheduled")
	require.NoError(t, err)

	assert.Equal(t, []string{"daily_1", "weekly_1"}, evaluate(t, u, expr))
}

func TestSelectorParser_Inheritance(t *testing.T) {
	t.Run("selector method resolves the referenced selector", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: base
    definition: "tag:nightly"
  - name: derived
    definition:
      method: selector
      value: base
`)

		expr, err := parser.ParseNamed("derived")
		require.NoError(t, err)

		criteria := requireAtom(t, expr)
		assert.Equal(t, "nightly", criteria.Value)
		assert.Empty(t, parser.Warnings())
	})

	t.Run("graph operators on the reference are ignored with a warning", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: base
    definition: "tag:nightly"
  - name: derived
    definition:
      method: selector
      value: base
      parents: true
`)

		expr, err := parser.ParseNamed("derived")
		require.NoError(t, err)

		criteria := requireAtom(t, expr)
		assert.False(t, criteria.Parents)
		require.Len(t, parser.Warnings(), 1)
		assert.Contains(t, parser.Warnings()[0], "graph operators")
	})

	t.Run("unknown reference", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: derived
    definition:
      method: selector
      value: missing
`)

		_, err := parser.ParseNamed("derived")
		assert.ErrorIs(t, err, ErrUnknownSelector)
	})
}

func TestSelectorParser_UnknownName(t *testing.T) {
	parser := NewSelectorParser(nil)

	_, err := parser.ParseNamed("anything")
	assert.ErrorIs(t, err, ErrUnknownSelector)
}

func TestSelectorParser_ParseDefault(t *testing.T) {
	t.Run("returns the default selector", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: other
    definition: "tag:other"
  - name: main
    default: true
    definition: "tag:main"
`)

		expr, found, err := parser.ParseDefault()
		require.NoError(t, err)
		require.True(t, found)

		criteria := requireAtom(t, expr)
		assert.Equal(t, "main", criteria.Value)
	})

	t.Run("reports absence without error", func(t *testing.T) {
		parser := parseSelectorsDoc(t, `
selectors:
  - name: only
    definition: "tag:only"
`)

		_, found, err := parser.ParseDefault()
		require.NoError(t, err)
		assert.False(t, found)
	})
}
