package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/picket-dev/picket/internal/adapter"
	"github.com/picket-dev/picket/internal/controller"
	m "github.com/picket-dev/picket/internal/model"
)

// Workflow exposes the node selection use cases to the commands.
type Workflow interface {
	// Select evaluates the selection and prints the result.
	Select(ctx context.Context, args SelectArgs) error
	// List prints every node of the manifest.
	List(ctx context.Context, args ListArgs) error
	// View opens the selection result in the interactive browser.
	View(ctx context.Context, args ViewArgs) error
}

// SelectArgs holds the arguments of the select command.
type SelectArgs struct {
	Manifest  m.Path
	Selectors m.Path
	Select    []string
	Exclude   []string
	Selector  string
	Parallel  int
	IDsOnly   bool
}

// ListArgs holds the arguments of the list command.
type ListArgs struct {
	Manifest m.Path
}

// ViewArgs holds the arguments of the view command.
type ViewArgs struct {
	Manifest  m.Path
	Selectors m.Path
	Select    []string
	Exclude   []string
	Selector  string
}

type workflow struct {
	manifests adapter.ManifestStore
	selectors adapter.SelectorStore
	ui        controller.UI
}

// NewWorkflow creates a Workflow over the given stores and UI.
func NewWorkflow(manifests adapter.ManifestStore, selectors adapter.SelectorStore, ui controller.UI) Workflow {
	return &workflow{
		manifests: manifests,
		selectors: selectors,
		ui:        ui,
	}
}

func (w *workflow) Select(ctx context.Context, args SelectArgs) error {
	universe, err := w.manifests.LoadUniverse(args.Manifest)
	if err != nil {
		return err
	}

	expr, warnings, err := w.buildExpression(args.Selectors, args.Select, args.Exclude, args.Selector)
	if err != nil {
		return err
	}

	w.ui.DisplayWarnings(warnings)

	evaluator := NewEvaluator(universe, WithParallelism(args.Parallel))

	result, err := evaluator.Evaluate(ctx, expr)
	if err != nil {
		return err
	}

	if args.IDsOnly {
		return w.ui.DisplayIDs(result.IDs())
	}

	return w.ui.DisplayNodes(result.Nodes(), universe.Len())
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	universe, err := w.manifests.LoadUniverse(args.Manifest)
	if err != nil {
		return err
	}

	return w.ui.DisplayNodes(universe.Nodes(), universe.Len())
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	universe, err := w.manifests.LoadUniverse(args.Manifest)
	if err != nil {
		return err
	}

	expr, warnings, err := w.buildExpression(args.Selectors, args.Select, args.Exclude, args.Selector)
	if err != nil {
		return err
	}

	w.ui.DisplayWarnings(warnings)

	result, err := NewEvaluator(universe).Evaluate(ctx, expr)
	if err != nil {
		return err
	}

	return w.ui.Browse(viewTitle(args), result.Nodes())
}

// buildExpression assembles the selection expression from the command-line
// arguments. Precedence: a named selector wins, then explicit specifiers,
// then the selectors file's default selector; with none of those every node
// is selected. Excludes always narrow whatever the inclusion yielded.
func (w *workflow) buildExpression(
	selectorsPath m.Path,
	selects []string,
	excludes []string,
	selectorName string,
) (m.Expression, []string, error) {
	var (
		include  m.Expression
		warnings []string
		err      error
	)

	switch {
	case selectorName != "":
		include, warnings, err = w.parseNamedSelector(selectorsPath, selectorName)
	case len(selects) > 0:
		include, err = ParseSpecifiers(selects)
	default:
		include, warnings, err = w.parseDefaultSelector(selectorsPath)
	}

	if err != nil {
		return nil, nil, err
	}

	if len(excludes) > 0 {
		excluded, err := ParseSpecifiers(excludes)
		if err != nil {
			return nil, nil, err
		}

		include = m.And{Children: []m.Expression{
			include,
			m.Exclude{Inner: excluded},
		}}
	}

	return include, warnings, nil
}

func (w *workflow) parseNamedSelector(path m.Path, name string) (m.Expression, []string, error) {
	defs, err := w.selectors.LoadSelectors(path)
	if err != nil {
		return nil, nil, err
	}

	parser := NewSelectorParser(defs)

	expr, err := parser.ParseNamed(name)
	if err != nil {
		return nil, nil, err
	}

	return expr, parser.Warnings(), nil
}

// parseDefaultSelector resolves the default selector of the selectors file.
// A missing file is not an error: without one the whole universe is selected.
func (w *workflow) parseDefaultSelector(path m.Path) (m.Expression, []string, error) {
	defs, err := w.selectors.LoadSelectors(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.And{}, nil, nil
		}

		return nil, nil, err
	}

	parser := NewSelectorParser(defs)

	expr, found, err := parser.ParseDefault()
	if err != nil {
		return nil, nil, err
	}

	if !found {
		return m.And{}, parser.Warnings(), nil
	}

	return expr, parser.Warnings(), nil
}

func viewTitle(args ViewArgs) string {
	switch {
	case args.Selector != "":
		return fmt.Sprintf("selector %q", args.Selector)
	case len(args.Select) > 0:
		return strings.Join(args.Select, " ")
	default:
		return "all nodes"
	}
}
