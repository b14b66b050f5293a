package model

import "fmt"

// Universe is the complete ordered collection of nodes available in one
// evaluation pass. Listing order is the canonical presentation order of
// selection results. Each node gets a dense integer index at construction,
// which the set operations in NodeSet build on.
type Universe struct {
	nodes      []Node
	index      map[string]int
	parentsOf  [][]int
	childrenOf [][]int
}

// NewUniverse builds a universe from nodes in listing order. Node IDs must
// be unique; a duplicate is a construction error. Dependency edges pointing
// at IDs outside the universe are dropped (a manifest may describe a
// filtered slice of a larger graph).
func NewUniverse(nodes []Node) (*Universe, error) {
	u := &Universe{
		nodes: make([]Node, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}
	copy(u.nodes, nodes)

	for i, node := range u.nodes {
		if node.UniqueID == "" {
			return nil, fmt.Errorf("node %d has no unique ID", i)
		}

		if previous, ok := u.index[node.UniqueID]; ok {
			return nil, fmt.Errorf("duplicate node ID %q (positions %d and %d)", node.UniqueID, previous, i)
		}

		u.index[node.UniqueID] = i
	}

	u.parentsOf = make([][]int, len(u.nodes))
	u.childrenOf = make([][]int, len(u.nodes))

	for i, node := range u.nodes {
		for _, dep := range node.DependsOn {
			j, ok := u.index[dep]
			if !ok {
				continue
			}

			u.parentsOf[i] = append(u.parentsOf[i], j)
			u.childrenOf[j] = append(u.childrenOf[j], i)
		}
	}

	return u, nil
}

// Len returns the number of nodes in the universe.
func (u *Universe) Len() int {
	return len(u.nodes)
}

// Node returns the node at dense index i.
func (u *Universe) Node(i int) Node {
	return u.nodes[i]
}

// Nodes returns all nodes in listing order.
func (u *Universe) Nodes() []Node {
	nodes := make([]Node, len(u.nodes))
	copy(nodes, u.nodes)

	return nodes
}

// Index returns the dense index of the node with the given ID.
func (u *Universe) Index(id string) (int, bool) {
	i, ok := u.index[id]

	return i, ok
}

// Parents returns the dense indexes of the direct dependencies of node i.
func (u *Universe) Parents(i int) []int {
	return u.parentsOf[i]
}

// Children returns the dense indexes of the nodes that directly depend on
// node i.
func (u *Universe) Children(i int) []int {
	return u.childrenOf[i]
}
