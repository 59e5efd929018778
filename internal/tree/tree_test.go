package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaf(t *testing.T) {
	leaf := Leaf()
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, 1, leaf.Order())
	assert.Equal(t, "()", leaf.Notation())
	assert.Equal(t, 0, leaf.NumChildren())
}

func TestNewPreservesChildOrder(t *testing.T) {
	chain := New(New(Leaf()))
	corolla := New(Leaf(), Leaf())

	mixed := New(chain, corolla)
	assert.Equal(t, "(((()))(()()))", mixed.Notation())

	flipped := New(corolla, chain)
	assert.Equal(t, "((()())((())))", flipped.Notation())
	assert.False(t, mixed.Equal(flipped))
}

func TestOrderRecursive(t *testing.T) {
	leaf := Leaf()
	tests := []struct {
		tree     Tree
		expected int
	}{
		{leaf, 1},
		{New(leaf), 2},
		{New(leaf, leaf), 3},
		{New(New(leaf), leaf), 4},
		{New(leaf, leaf, leaf), 4},
		{New(New(New(leaf))), 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.tree.Order(), "order of %s", tt.tree)
	}
}

func TestEqualStructural(t *testing.T) {
	a := New(New(Leaf()), Leaf())
	b := New(New(Leaf()), Leaf())
	c := New(Leaf(), New(Leaf()))

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.True(t, Leaf().Equal(Leaf()))
	assert.False(t, Leaf().Equal(a))
}

func TestConstructorCopiesInput(t *testing.T) {
	children := []Tree{Leaf(), Leaf()}
	built := New(children...)

	// Mutating the caller's slice must not affect the tree.
	children[0] = New(Leaf())
	assert.Equal(t, "(()())", built.Notation())
}

func TestChildrenReturnsCopy(t *testing.T) {
	built := New(Leaf(), Leaf())
	cs := built.Children()
	cs[0] = New(Leaf())
	assert.Equal(t, "(()())", built.Notation())

	assert.Nil(t, Leaf().Children())
}

func TestGraft(t *testing.T) {
	leaf := Leaf()

	assert.Equal(t, "(())", Graft(Forest{leaf}).Notation())
	assert.Equal(t, "(()()())", Graft(Forest{leaf, leaf, leaf}).Notation())
	assert.True(t, Graft(Forest{}).IsLeaf())

	// Iterated unary grafting builds a chain.
	chain := Graft(Forest{Graft(Forest{Graft(Forest{leaf})})})
	assert.Equal(t, 4, chain.Order())
	assert.Equal(t, "(((())))", chain.Notation())
}

func TestForestOrderAndNotation(t *testing.T) {
	leaf := Leaf()
	f := Forest{leaf, New(leaf)}

	assert.Equal(t, 3, f.Order())
	assert.Equal(t, "()(())", f.Notation())

	empty := Forest{}
	assert.Equal(t, 0, empty.Order())
	assert.Equal(t, "", empty.Notation())
}
