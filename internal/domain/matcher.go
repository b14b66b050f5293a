// Package domain implements selector parsing and the expression evaluator.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	m "github.com/picket-dev/picket/internal/model"
)

// ErrUnknownMethod reports a selection method outside the closed method set.
var ErrUnknownMethod = errors.New("unknown selection method")

// ParseMethod resolves a method name to its Method value.
func ParseMethod(name string) (m.Method, error) {
	switch m.Method(name) {
	case m.MethodFQN, m.MethodTag, m.MethodPath, m.MethodPackage, m.MethodKind:
		return m.Method(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// DefaultMethod infers the method for a bare specifier without a method
// prefix: path-like values select by path, everything else by FQN.
func DefaultMethod(value string) m.Method {
	if strings.ContainsAny(value, `/\`) {
		return m.MethodPath
	}

	return m.MethodFQN
}

// Matcher is the compiled form of a single selection criteria. Matches is a
// pure function of the criteria and the node's attributes; an unknown method
// or a malformed pattern surfaces here, at construction, never per node.
type Matcher struct {
	method  m.Method
	value   string
	pattern glob.Glob // nil for the path and kind methods
}

// NewMatcher compiles the criteria's pattern for its method.
func NewMatcher(criteria m.SelectionCriteria) (*Matcher, error) {
	switch criteria.Method {
	case m.MethodPath:
		if !doublestar.ValidatePattern(criteria.Value) {
			return nil, fmt.Errorf("path pattern %q: %w", criteria.Value, doublestar.ErrBadPattern)
		}

		return &Matcher{method: criteria.Method, value: criteria.Value}, nil
	case m.MethodKind:
		return &Matcher{method: criteria.Method, value: criteria.Value}, nil
	case m.MethodFQN, m.MethodTag, m.MethodPackage:
		pattern, err := glob.Compile(criteria.Value)
		if err != nil {
			return nil, fmt.Errorf("%s pattern %q: %w", criteria.Method, criteria.Value, err)
		}

		return &Matcher{method: criteria.Method, value: criteria.Value, pattern: pattern}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, criteria.Method)
	}
}

// Matches reports whether the node satisfies the criteria.
func (mt *Matcher) Matches(node m.Node) bool {
	switch mt.method {
	case m.MethodPath:
		// The pattern was validated at construction; Match cannot fail here.
		ok, _ := doublestar.Match(mt.value, node.Path)

		return ok
	case m.MethodKind:
		return string(node.Kind) == mt.value
	case m.MethodTag:
		if node.HasTag(mt.value) {
			return true
		}

		for _, tag := range node.Tags {
			if mt.pattern.Match(tag) {
				return true
			}
		}

		return false
	case m.MethodPackage:
		return mt.pattern.Match(node.PackageName)
	case m.MethodFQN:
		if mt.pattern.Match(node.Name) {
			return true
		}

		// fqn:a.b selects a.b itself and everything nested below it, so the
		// pattern is tried against every dot-boundary prefix of the FQN.
		for i := 1; i <= len(node.FQN); i++ {
			if mt.pattern.Match(strings.Join(node.FQN[:i], ".")) {
				return true
			}
		}

		return false
	}

	return false
}
