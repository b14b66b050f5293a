package domain

import (
	"errors"
	"fmt"
	"strings"

	m "github.com/picket-dev/picket/internal/model"
)

// ErrUnknownSelector reports a reference to a named selector that is not
// defined in the selectors file.
var ErrUnknownSelector = errors.New("unknown selector")

// methodSelector is the reserved method name for selector inheritance.
const methodSelector = "selector"

// SelectorParser converts named selector definitions into the expressions
// the evaluator understands.
type SelectorParser struct {
	defs     map[string]m.SelectorDefinition
	warnings []string
}

// NewSelectorParser creates a parser over the given definitions.
func NewSelectorParser(defs []m.SelectorDefinition) *SelectorParser {
	byName := make(map[string]m.SelectorDefinition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	return &SelectorParser{defs: byName}
}

// Warnings returns the non-fatal problems collected while parsing.
func (p *SelectorParser) Warnings() []string {
	return p.warnings
}

// ParseNamed resolves a selector by name.
func (p *SelectorParser) ParseNamed(name string) (m.Expression, error) {
	def, ok := p.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, name)
	}

	return p.ParseDefinition(def.Definition)
}

// ParseDefault resolves the selector marked default in the selectors file,
// if one exists.
func (p *SelectorParser) ParseDefault() (m.Expression, bool, error) {
	for name, def := range p.defs {
		if !def.Default {
			continue
		}

		expr, err := p.ParseNamed(name)
		if err != nil {
			return nil, false, err
		}

		return expr, true, nil
	}

	return nil, false, nil
}

// ParseDefinition resolves a definition value: a bare specifier string
// (whitespace-separated specifiers unite) or a full expression mapping.
func (p *SelectorParser) ParseDefinition(value m.DefinitionValue) (m.Expression, error) {
	if value.Expr == nil {
		fields := strings.Fields(value.String)
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty selector definition")
		}

		return ParseSpecifiers(fields)
	}

	return p.ParseExpr(value.Expr)
}

// ParseExpr resolves one expression mapping.
func (p *SelectorParser) ParseExpr(expr *m.SelectorExpr) (m.Expression, error) {
	if len(expr.Union) > 0 || len(expr.Intersection) > 0 {
		return p.parseComposite(expr)
	}

	return p.parseAtom(expr)
}

// parseComposite resolves a union/intersection block. Bare exclude entries
// inside the composite are hoisted out of it: the result is
// And([composite-of-includes, Exclude(Or(excludes))]), so an exclude entry
// restricts the whole composite rather than participating in it.
func (p *SelectorParser) parseComposite(expr *m.SelectorExpr) (m.Expression, error) {
	if len(expr.Union) > 0 && len(expr.Intersection) > 0 {
		return nil, fmt.Errorf("composite selector cannot mix union and intersection")
	}

	values := expr.Union
	united := true

	if len(expr.Intersection) > 0 {
		values = expr.Intersection
		united = false
	}

	var includes []m.Expression

	var excludes []m.Expression

	for _, value := range values {
		if isBareExclude(value) {
			exclude, err := p.parseExcludeList(value.Expr.Exclude)
			if err != nil {
				return nil, err
			}

			excludes = append(excludes, exclude)

			continue
		}

		include, err := p.ParseDefinition(value)
		if err != nil {
			return nil, err
		}

		includes = append(includes, include)
	}

	var include m.Expression
	if united {
		include = m.Or{Children: includes}
	} else {
		include = m.And{Children: includes}
	}

	if len(excludes) == 0 {
		return include, nil
	}

	return m.And{Children: []m.Expression{
		include,
		m.Exclude{Inner: unionOf(excludes)},
	}}, nil
}

// parseAtom resolves a non-composite mapping. A bare exclude only has
// meaning inside a composite, where parseComposite hoists it; anywhere else
// it is rejected.
func (p *SelectorParser) parseAtom(expr *m.SelectorExpr) (m.Expression, error) {
	switch {
	case expr.Method != "":
		return p.parseMethodAtom(expr)
	case len(expr.MethodKey) > 0:
		return p.parseMethodKeyAtom(expr)
	case len(expr.Exclude) > 0:
		return nil, fmt.Errorf("top-level exclude is not allowed in a selectors file")
	default:
		return nil, fmt.Errorf("empty selector expression")
	}
}

func (p *SelectorParser) parseMethodAtom(expr *m.SelectorExpr) (m.Expression, error) {
	// "method: selector" inherits another named selector. Graph operators
	// are not supported on the reference and are ignored with a warning.
	if expr.Method == methodSelector {
		if hasGraphOperators(expr) {
			p.warnings = append(p.warnings,
				fmt.Sprintf("selector %q: graph operators are not supported with selector inheritance and were ignored", expr.Value))
		}

		return p.ParseNamed(expr.Value)
	}

	method, err := ParseMethod(expr.Method)
	if err != nil {
		return nil, err
	}

	criteria := m.SelectionCriteria{
		Method:           method,
		Value:            expr.Value,
		ChildrensParents: expr.ChildrensParents,
		Parents:          expr.Parents,
		ParentsDepth:     expr.ParentsDepth,
		Children:         expr.Children,
		ChildrenDepth:    expr.ChildrenDepth,
	}

	// A depth without its flag still means traversal: "parents_depth: 2"
	// alone reads as "parents up to two levels".
	if criteria.ParentsDepth > 0 {
		criteria.Parents = true
	}

	if criteria.ChildrenDepth > 0 {
		criteria.Children = true
	}

	if len(expr.Exclude) > 0 {
		exclude, err := p.parseExcludeList(expr.Exclude)
		if err != nil {
			return nil, err
		}

		criteria.Exclude = exclude
	}

	if _, err := NewMatcher(criteria); err != nil {
		return nil, err
	}

	return m.Atom{Criteria: criteria}, nil
}

func (p *SelectorParser) parseMethodKeyAtom(expr *m.SelectorExpr) (m.Expression, error) {
	if len(expr.MethodKey) != 1 {
		return nil, fmt.Errorf("method shorthand must have exactly one key-value pair, got %d", len(expr.MethodKey))
	}

	for name, value := range expr.MethodKey {
		method, err := ParseMethod(name)
		if err != nil {
			return nil, err
		}

		criteria := m.SelectionCriteria{Method: method, Value: value}
		if _, err := NewMatcher(criteria); err != nil {
			return nil, err
		}

		return m.Atom{Criteria: criteria}, nil
	}

	return nil, fmt.Errorf("empty method shorthand")
}

// parseExcludeList resolves an exclude list into a single expression:
// one entry stands alone, several unite.
func (p *SelectorParser) parseExcludeList(values []m.DefinitionValue) (m.Expression, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("empty exclude list")
	}

	expressions := make([]m.Expression, 0, len(values))

	for _, value := range values {
		expr, err := p.ParseDefinition(value)
		if err != nil {
			return nil, err
		}

		expressions = append(expressions, expr)
	}

	return unionOf(expressions), nil
}

func unionOf(expressions []m.Expression) m.Expression {
	if len(expressions) == 1 {
		return expressions[0]
	}

	return m.Or{Children: expressions}
}

func isBareExclude(value m.DefinitionValue) bool {
	expr := value.Expr
	if expr == nil {
		return false
	}

	return len(expr.Exclude) > 0 &&
		expr.Method == "" &&
		len(expr.MethodKey) == 0 &&
		len(expr.Union) == 0 &&
		len(expr.Intersection) == 0
}

func hasGraphOperators(expr *m.SelectorExpr) bool {
	return expr.ChildrensParents ||
		expr.Parents ||
		expr.Children ||
		expr.ParentsDepth > 0 ||
		expr.ChildrenDepth > 0
}
