// Package tree defines the immutable rooted-tree and forest value types that
// every other layer of the engine operates on.
//
// A Tree is a root node with an ordered (possibly empty) sequence of child
// trees. Trees are pure values: constructors copy their inputs, accessors copy
// their outputs, and equality is deep structural comparison. There are no
// labels and no mutation; derived quantities (order, notation) are recomputed
// on demand.
package tree

// Tree is a finite rooted tree with ordered, unlabeled children.
// The zero value is a leaf.
type Tree struct {
	children []Tree
}

// Leaf returns the single-node tree.
func Leaf() Tree {
	return Tree{}
}

// New builds a tree whose root has exactly the given children, in order.
// The child slice is copied; callers keep ownership of their arguments.
func New(children ...Tree) Tree {
	if len(children) == 0 {
		return Tree{}
	}
	cs := make([]Tree, len(children))
	copy(cs, children)
	return Tree{children: cs}
}

// Graft is the B+ operator: it places a new root above the given forest.
// Graft of an empty forest is a leaf.
func Graft(f Forest) Tree {
	return New(f...)
}

// IsLeaf reports whether the tree is a single node.
func (t Tree) IsLeaf() bool {
	return len(t.children) == 0
}

// NumChildren returns the number of children of the root.
func (t Tree) NumChildren() int {
	return len(t.children)
}

// Children returns a copy of the root's children, in order.
func (t Tree) Children() []Tree {
	if len(t.children) == 0 {
		return nil
	}
	cs := make([]Tree, len(t.children))
	copy(cs, t.children)
	return cs
}

// Order returns the number of nodes in the tree (the grading).
func (t Tree) Order() int {
	n := 1
	for _, c := range t.children {
		n += c.Order()
	}
	return n
}

// Notation renders the tree in bracket form: "()" for a leaf, otherwise the
// concatenated child notations wrapped in one pair of brackets.
func (t Tree) Notation() string {
	if t.IsLeaf() {
		return "()"
	}
	s := "("
	for _, c := range t.children {
		s += c.Notation()
	}
	return s + ")"
}

// Equal reports deep structural equality, respecting child order.
func (t Tree) Equal(other Tree) bool {
	if len(t.children) != len(other.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (t Tree) String() string {
	return t.Notation()
}

// Forest is an ordered disjoint union of rooted trees. It appears as the
// pruned half of an admissible cut and the left half of a coproduct term.
type Forest []Tree

// Order returns the total node count across all member trees.
func (f Forest) Order() int {
	n := 0
	for _, t := range f {
		n += t.Order()
	}
	return n
}

// Notation renders the forest as the concatenation of member notations.
// The empty forest renders as the empty string.
func (f Forest) Notation() string {
	s := ""
	for _, t := range f {
		s += t.Notation()
	}
	return s
}

// String implements fmt.Stringer.
func (f Forest) String() string {
	return f.Notation()
}
