package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "github.com/picket-dev/picket/internal/model"
)

// ParseSpecifiers turns command-line node specifiers into a selector
// expression. Each value may be a comma-separated intersection of atoms, and
// multiple values are united:
//
//	picket select -s tag:nightly -s "path:models/core/*,tag:hourly"
//
// selects tag:nightly ∪ (path:models/core/* ∩ tag:hourly). Atom syntax is
// [@][N+|+]method:pattern[+[N]]; a specifier without a method prefix falls
// back to DefaultMethod.
func ParseSpecifiers(values []string) (m.Expression, error) {
	expressions := make([]m.Expression, 0, len(values))

	for _, value := range values {
		expr, err := parseIntersection(value)
		if err != nil {
			return nil, err
		}

		expressions = append(expressions, expr)
	}

	if len(expressions) == 1 {
		return expressions[0], nil
	}

	return m.Or{Children: expressions}, nil
}

// ParseSpecifier parses a single atom specifier.
func ParseSpecifier(raw string) (m.Expression, error) {
	criteria, err := parseCriteria(raw)
	if err != nil {
		return nil, err
	}

	return m.Atom{Criteria: criteria}, nil
}

func parseIntersection(value string) (m.Expression, error) {
	parts := strings.Split(value, ",")

	atoms := make([]m.Expression, 0, len(parts))

	for _, part := range parts {
		atom, err := ParseSpecifier(part)
		if err != nil {
			return nil, err
		}

		atoms = append(atoms, atom)
	}

	if len(atoms) == 1 {
		return atoms[0], nil
	}

	return m.And{Children: atoms}, nil
}

func parseCriteria(raw string) (m.SelectionCriteria, error) {
	spec := strings.TrimSpace(raw)
	if spec == "" {
		return m.SelectionCriteria{}, fmt.Errorf("empty node specifier")
	}

	var criteria m.SelectionCriteria

	if strings.HasPrefix(spec, "@") {
		criteria.ChildrensParents = true
		spec = spec[1:]
	}

	if strings.HasPrefix(spec, "+") {
		criteria.Parents = true
		spec = spec[1:]
	} else if depth, rest, ok := cutLeadingDepth(spec); ok {
		criteria.Parents = true
		criteria.ParentsDepth = depth
		spec = rest
	}

	if strings.HasSuffix(spec, "+") {
		criteria.Children = true
		spec = strings.TrimSuffix(spec, "+")
	} else if depth, rest, ok := cutTrailingDepth(spec); ok {
		criteria.Children = true
		criteria.ChildrenDepth = depth
		spec = rest
	}

	if method, value, found := strings.Cut(spec, ":"); found {
		parsed, err := ParseMethod(method)
		if err != nil {
			return m.SelectionCriteria{}, fmt.Errorf("specifier %q: %w", raw, err)
		}

		criteria.Method = parsed
		criteria.Value = value
	} else {
		criteria.Method = DefaultMethod(spec)
		criteria.Value = spec
	}

	if criteria.Value == "" {
		return m.SelectionCriteria{}, fmt.Errorf("specifier %q has no pattern", raw)
	}

	// Compile once so pattern problems surface at construction time.
	if _, err := NewMatcher(criteria); err != nil {
		return m.SelectionCriteria{}, fmt.Errorf("specifier %q: %w", raw, err)
	}

	return criteria, nil
}

// cutLeadingDepth splits a "N+" prefix off a specifier.
func cutLeadingDepth(spec string) (int, string, bool) {
	i := 0
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		i++
	}

	if i == 0 || i >= len(spec) || spec[i] != '+' {
		return 0, spec, false
	}

	depth, err := strconv.Atoi(spec[:i])
	if err != nil {
		return 0, spec, false
	}

	return depth, spec[i+1:], true
}

// cutTrailingDepth splits a "+N" suffix off a specifier.
func cutTrailingDepth(spec string) (int, string, bool) {
	i := len(spec)
	for i > 0 && spec[i-1] >= '0' && spec[i-1] <= '9' {
		i--
	}

	if i == len(spec) || i < 2 || spec[i-1] != '+' {
		return 0, spec, false
	}

	depth, err := strconv.Atoi(spec[i:])
	if err != nil {
		return 0, spec, false
	}

	return depth, spec[:i-1], true
}
