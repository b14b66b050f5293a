package model

// Method names an atomic selection method. The method set is closed; the
// matcher dispatches over it when a criteria is compiled.
type Method string

const (
	// MethodFQN matches against the dot-joined fully qualified name or the
	// bare node name. It is the default method for plain specifiers.
	MethodFQN Method = "fqn"
	// MethodTag matches against each of the node's tags.
	MethodTag Method = "tag"
	// MethodPath matches against the node's file path, with ** support.
	MethodPath Method = "path"
	// MethodPackage matches against the node's package name.
	MethodPackage Method = "package"
	// MethodKind matches the resource kind exactly.
	MethodKind Method = "kind"
)

// SelectionCriteria is an atomic method:pattern predicate, optionally
// widened along dependency edges by graph operators and narrowed by a
// nested exclude expression.
type SelectionCriteria struct {
	Method Method
	Value  string

	// Graph operators. A zero depth with the corresponding flag set means
	// unbounded traversal.
	ChildrensParents bool
	Parents          bool
	ParentsDepth     int
	Children         bool
	ChildrenDepth    int

	// Exclude, when non-nil, is evaluated against the whole universe and
	// subtracted from this atom's expanded match set.
	Exclude Expression
}

// Expression is the boolean selector tree combining criteria through
// intersection, union and exclusion. The variant set is closed: Atom, And,
// Or and Exclude.
type Expression interface {
	exprNode()
}

// Atom selects the nodes matching a single criteria.
type Atom struct {
	Criteria SelectionCriteria
}

// And selects the intersection of its children. With no children it selects
// the whole universe, the identity element of intersection.
type And struct {
	Children []Expression
}

// Or selects the union of its children. With no children it selects nothing.
type Or struct {
	Children []Expression
}

// Exclude selects the complement of its inner expression within the ambient
// universe.
type Exclude struct {
	Inner Expression
}

func (Atom) exprNode()    {}
func (And) exprNode()     {}
func (Or) exprNode()      {}
func (Exclude) exprNode() {}
