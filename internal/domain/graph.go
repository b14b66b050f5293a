package domain

import (
	m "github.com/picket-dev/picket/internal/model"
)

// expandGraphOperators widens an atom's direct match set along dependency
// edges according to the criteria's graph operators:
//
//   - Parents ("+model"): the matches plus their ancestors.
//   - Children ("model+"): the matches plus their descendants.
//   - ChildrensParents ("@model"): the matches, their descendants, and every
//     ancestor of that combined set.
func expandGraphOperators(universe *m.Universe, criteria m.SelectionCriteria, base m.NodeSet) m.NodeSet {
	if criteria.ChildrensParents {
		withDescendants := base.Union(traverse(universe, base, universe.Children, 0))

		return withDescendants.Union(traverse(universe, withDescendants, universe.Parents, 0))
	}

	result := base

	if criteria.Parents {
		result = result.Union(traverse(universe, base, universe.Parents, criteria.ParentsDepth))
	}

	if criteria.Children {
		result = result.Union(traverse(universe, base, universe.Children, criteria.ChildrenDepth))
	}

	return result
}

// traverse walks dependency edges breadth-first from every node of the seed
// set, up to maxDepth levels (0 means unbounded), and returns the nodes
// reached. BFS visits each node at its minimum depth, so a depth limit never
// cuts off a node that is also reachable by a shorter route.
func traverse(universe *m.Universe, seeds m.NodeSet, edges func(int) []int, maxDepth int) m.NodeSet {
	reached := universe.EmptySet()
	visited := make([]bool, universe.Len())

	type item struct {
		index int
		depth int
	}

	var queue []item

	for i := 0; i < universe.Len(); i++ {
		if seeds.Contains(i) {
			visited[i] = true
			queue = append(queue, item{index: i})
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if maxDepth > 0 && current.depth == maxDepth {
			continue
		}

		for _, next := range edges(current.index) {
			if visited[next] {
				continue
			}

			visited[next] = true
			reached.Add(next)
			queue = append(queue, item{index: next, depth: current.depth + 1})
		}
	}

	return reached
}
