package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SelectorsFile is the top-level document of a selectors file.
type SelectorsFile struct {
	Selectors []SelectorDefinition `yaml:"selectors"`
}

// SelectorDefinition is one named selector of a selectors file.
type SelectorDefinition struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Default     bool            `yaml:"default,omitempty"`
	Definition  DefinitionValue `yaml:"definition"`
}

// DefinitionValue is either a bare specifier string or a full selector
// expression; selectors files allow both forms anywhere a definition is
// expected.
type DefinitionValue struct {
	String string
	Expr   *SelectorExpr
}

// UnmarshalYAML decodes a scalar into String and a mapping into Expr.
func (v *DefinitionValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&v.String)
	case yaml.MappingNode:
		v.Expr = &SelectorExpr{}

		return node.Decode(v.Expr)
	default:
		return fmt.Errorf("selector definition must be a string or a mapping (line %d)", node.Line)
	}
}

// SelectorExpr is one mapping of a selector definition: a composite
// (union/intersection), a method atom, an exclude list, or the method-key
// shorthand form ("tag: nightly").
type SelectorExpr struct {
	Union        []DefinitionValue `yaml:"union,omitempty"`
	Intersection []DefinitionValue `yaml:"intersection,omitempty"`

	Method           string `yaml:"method,omitempty"`
	Value            string `yaml:"value,omitempty"`
	ChildrensParents bool   `yaml:"childrens_parents,omitempty"`
	Parents          bool   `yaml:"parents,omitempty"`
	ParentsDepth     int    `yaml:"parents_depth,omitempty"`
	Children         bool   `yaml:"children,omitempty"`
	ChildrenDepth    int    `yaml:"children_depth,omitempty"`

	Exclude []DefinitionValue `yaml:"exclude,omitempty"`

	// MethodKey holds the shorthand form, e.g. {"tag": "nightly"}. Populated
	// from any mapping key that is not a reserved field name.
	MethodKey map[string]string `yaml:"-"`
}

// selectorExprFields are the reserved mapping keys of a SelectorExpr; any
// other key is treated as a method-key shorthand.
var selectorExprFields = map[string]bool{
	"union":             true,
	"intersection":      true,
	"method":            true,
	"value":             true,
	"childrens_parents": true,
	"parents":           true,
	"parents_depth":     true,
	"children":          true,
	"children_depth":    true,
	"exclude":           true,
}

// UnmarshalYAML decodes the reserved fields and collects every remaining
// key into MethodKey.
func (e *SelectorExpr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("selector expression must be a mapping (line %d)", node.Line)
	}

	type plain SelectorExpr

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*e = SelectorExpr(p)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if selectorExprFields[key] {
			continue
		}

		var value string
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("selector method %q: %w", key, err)
		}

		if e.MethodKey == nil {
			e.MethodKey = make(map[string]string)
		}

		e.MethodKey[key] = value
	}

	return nil
}
