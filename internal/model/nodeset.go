package model

import "math/bits"

const wordBits = 64

// NodeSet is a set of nodes from one universe, stored as a bitset over the
// universe's dense index space. Sets are created through Universe.EmptySet
// and Universe.All and combined with Union, Intersect and Subtract; the two
// operands of a combination must come from the same universe.
//
// Emptiness is never special-cased: subtracting a set that matched nothing
// is an AND-NOT against all-zero words and leaves every member in place.
type NodeSet struct {
	universe *Universe
	words    []uint64
}

// EmptySet returns a set over this universe containing no nodes.
func (u *Universe) EmptySet() NodeSet {
	return NodeSet{
		universe: u,
		words:    make([]uint64, (u.Len()+wordBits-1)/wordBits),
	}
}

// All returns a set containing every node of this universe.
func (u *Universe) All() NodeSet {
	s := u.EmptySet()
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}

	// Clear the bits past the last node so Len and Equal stay exact.
	if rem := u.Len() % wordBits; rem != 0 {
		s.words[len(s.words)-1] = (uint64(1) << rem) - 1
	}

	return s
}

// Add puts the node at dense index i into the set.
func (s NodeSet) Add(i int) {
	s.words[i/wordBits] |= uint64(1) << (i % wordBits)
}

// Contains reports whether the node at dense index i is in the set.
func (s NodeSet) Contains(i int) bool {
	return s.words[i/wordBits]&(uint64(1)<<(i%wordBits)) != 0
}

// Len returns the number of nodes in the set.
func (s NodeSet) Len() int {
	total := 0
	for _, word := range s.words {
		total += bits.OnesCount64(word)
	}

	return total
}

// Union returns a new set with the nodes of s and other.
func (s NodeSet) Union(other NodeSet) NodeSet {
	result := s.clone()
	for i, word := range other.words {
		result.words[i] |= word
	}

	return result
}

// Intersect returns a new set with the nodes present in both s and other.
func (s NodeSet) Intersect(other NodeSet) NodeSet {
	result := s.clone()
	for i, word := range other.words {
		result.words[i] &= word
	}

	return result
}

// Subtract returns a new set with the nodes of s that are not in other.
func (s NodeSet) Subtract(other NodeSet) NodeSet {
	result := s.clone()
	for i, word := range other.words {
		result.words[i] &^= word
	}

	return result
}

// Equal reports whether s and other contain the same nodes.
func (s NodeSet) Equal(other NodeSet) bool {
	if len(s.words) != len(other.words) {
		return false
	}

	for i, word := range s.words {
		if word != other.words[i] {
			return false
		}
	}

	return true
}

// IDs returns the unique IDs of the set's nodes in universe order,
// independent of the order in which members were added.
func (s NodeSet) IDs() []string {
	ids := make([]string, 0, s.Len())
	for i := 0; i < s.universe.Len(); i++ {
		if s.Contains(i) {
			ids = append(ids, s.universe.Node(i).UniqueID)
		}
	}

	return ids
}

// Nodes returns the set's nodes in universe order.
func (s NodeSet) Nodes() []Node {
	nodes := make([]Node, 0, s.Len())
	for i := 0; i < s.universe.Len(); i++ {
		if s.Contains(i) {
			nodes = append(nodes, s.universe.Node(i))
		}
	}

	return nodes
}

func (s NodeSet) clone() NodeSet {
	result := NodeSet{
		universe: s.universe,
		words:    make([]uint64, len(s.words)),
	}
	copy(result.words, s.words)

	return result
}
