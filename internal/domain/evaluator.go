package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	m "github.com/picket-dev/picket/internal/model"
)

// Evaluator computes the node set selected by a selector expression against
// one universe. Evaluation is a structural recursion over the expression
// tree, and every combination step is plain bitset algebra — the degenerate
// cases (an exclude whose pattern matches nothing, composites with no
// children) are handled by the algebra itself, not by special-cased
// branches.
type Evaluator struct {
	universe *m.Universe
	parallel int
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithParallelism lets the evaluator process the children of wide And/Or
// nodes on up to n goroutines. Intersection and union are associative and
// commutative, so the result is identical to sequential evaluation.
func WithParallelism(n int) EvaluatorOption {
	return func(e *Evaluator) {
		if n > 1 {
			e.parallel = n
		}
	}
}

// NewEvaluator creates an evaluator bound to the given universe.
func NewEvaluator(universe *m.Universe, options ...EvaluatorOption) *Evaluator {
	e := &Evaluator{universe: universe, parallel: 1}
	for _, option := range options {
		option(e)
	}

	return e
}

// Evaluate returns the nodes selected by expr. Semantics, recursively:
//
//   - Atom: the nodes matching its criteria, widened by the criteria's graph
//     operators and narrowed by its nested exclude.
//   - And: the intersection of its children. An And with no children selects
//     the whole universe (the identity element of intersection).
//   - Or: the union of its children. An Or with no children selects nothing.
//   - Exclude: the universe minus the inner selection. An inner expression
//     that matches nothing therefore excludes nothing.
//
// An empty result is a normal, successful outcome. Errors are limited to
// context cancellation and ill-formed atoms; the parsers reject the latter
// before an expression ever reaches the evaluator.
func (e *Evaluator) Evaluate(ctx context.Context, expr m.Expression) (m.NodeSet, error) {
	if err := ctx.Err(); err != nil {
		return m.NodeSet{}, err
	}

	switch node := expr.(type) {
	case m.Atom:
		return e.evaluateAtom(ctx, node.Criteria)
	case m.And:
		return e.evaluateChildren(ctx, node.Children, e.universe.All(), m.NodeSet.Intersect)
	case m.Or:
		return e.evaluateChildren(ctx, node.Children, e.universe.EmptySet(), m.NodeSet.Union)
	case m.Exclude:
		inner, err := e.Evaluate(ctx, node.Inner)
		if err != nil {
			return m.NodeSet{}, err
		}

		return e.universe.All().Subtract(inner), nil
	}

	return m.NodeSet{}, fmt.Errorf("unsupported expression type %T", expr)
}

func (e *Evaluator) evaluateAtom(ctx context.Context, criteria m.SelectionCriteria) (m.NodeSet, error) {
	matcher, err := NewMatcher(criteria)
	if err != nil {
		return m.NodeSet{}, err
	}

	matched := e.universe.EmptySet()
	for i := 0; i < e.universe.Len(); i++ {
		if matcher.Matches(e.universe.Node(i)) {
			matched.Add(i)
		}
	}

	matched = expandGraphOperators(e.universe, criteria, matched)

	if criteria.Exclude != nil {
		excluded, err := e.Evaluate(ctx, criteria.Exclude)
		if err != nil {
			return m.NodeSet{}, err
		}

		matched = matched.Subtract(excluded)
	}

	return matched, nil
}

func (e *Evaluator) evaluateChildren(
	ctx context.Context,
	children []m.Expression,
	identity m.NodeSet,
	combine func(m.NodeSet, m.NodeSet) m.NodeSet,
) (m.NodeSet, error) {
	if e.parallel > 1 && len(children) > 1 {
		return e.evaluateChildrenParallel(ctx, children, identity, combine)
	}

	result := identity

	for _, child := range children {
		set, err := e.Evaluate(ctx, child)
		if err != nil {
			return m.NodeSet{}, err
		}

		result = combine(result, set)
	}

	return result, nil
}

func (e *Evaluator) evaluateChildrenParallel(
	ctx context.Context,
	children []m.Expression,
	identity m.NodeSet,
	combine func(m.NodeSet, m.NodeSet) m.NodeSet,
) (m.NodeSet, error) {
	sets := make([]m.NodeSet, len(children))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.parallel)

	for i, child := range children {
		i, child := i, child
		group.Go(func() error {
			set, err := e.Evaluate(groupCtx, child)
			if err != nil {
				return err
			}

			sets[i] = set

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.NodeSet{}, err
	}

	result := identity
	for _, set := range sets {
		result = combine(result, set)
	}

	return result, nil
}
