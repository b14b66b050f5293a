// Package model defines the data structures for node selection.
package model

// Path represents a file system path.
type Path string

// ResourceKind categorizes a node in the build graph.
type ResourceKind string

const (
	// KindModel represents a transformation node.
	KindModel ResourceKind = "model"
	// KindSeed represents a static data node.
	KindSeed ResourceKind = "seed"
	// KindSnapshot represents a point-in-time capture node.
	KindSnapshot ResourceKind = "snapshot"
	// KindTest represents a data test node.
	KindTest ResourceKind = "test"
	// KindSource represents an external input node.
	KindSource ResourceKind = "source"
)

// Node is one selectable build artifact in the dependency graph. Nodes are
// immutable for the duration of an evaluation; the evaluator only reads them.
type Node struct {
	UniqueID    string       `json:"unique_id"`
	Name        string       `json:"name"`
	PackageName string       `json:"package_name,omitempty"`
	Path        string       `json:"path,omitempty"`
	FQN         []string     `json:"fqn,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Kind        ResourceKind `json:"kind"`
	// DependsOn lists the unique IDs of the nodes this node is built from.
	DependsOn []string `json:"depends_on,omitempty"`
}

// HasTag reports whether the node carries the given tag.
func (n Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
