package hopf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgitcog/froot/internal/tree"
)

func TestAdmissibleCutsLeaf(t *testing.T) {
	assert.Empty(t, AdmissibleCuts(tree.Leaf()))
}

func TestAdmissibleCutsSingleChild(t *testing.T) {
	leaf := tree.Leaf()
	cuts := AdmissibleCuts(tree.New(leaf))

	require.Len(t, cuts, 1)
	assert.Equal(t, "()", cuts[0].Pruned.Notation())
	assert.True(t, cuts[0].Trunk.IsLeaf())
}

func TestAdmissibleCutsTwoCorolla(t *testing.T) {
	leaf := tree.Leaf()
	cuts := AdmissibleCuts(tree.New(leaf, leaf))

	// Prune left, prune right, prune both -- in bitmask order.
	require.Len(t, cuts, 3)
	assert.Equal(t, "()", cuts[0].Pruned.Notation())
	assert.Equal(t, "(())", cuts[0].Trunk.Notation())
	assert.Equal(t, "()", cuts[1].Pruned.Notation())
	assert.Equal(t, "(())", cuts[1].Trunk.Notation())
	assert.Equal(t, "()()", cuts[2].Pruned.Notation())
	assert.True(t, cuts[2].Trunk.IsLeaf())
}

func TestAdmissibleCutsDeterministicOrder(t *testing.T) {
	leaf := tree.Leaf()
	branch := tree.New(leaf)       // "(())"
	root := tree.New(branch, leaf) // "((())())"

	cuts := AdmissibleCuts(root)
	require.Len(t, cuts, 4)

	type pair struct{ pruned, trunk string }
	got := make([]pair, len(cuts))
	for i, c := range cuts {
		got[i] = pair{c.Pruned.Notation(), c.Trunk.Notation()}
	}

	// mask=01 prunes the branch; mask=10 prunes the right leaf, then the
	// inner cut of the surviving branch follows immediately; mask=11
	// prunes everything.
	expected := []pair{
		{"(())", "(())"},
		{"()", "((()))"},
		{"()()", "(())"},
		{"(())()", "()"},
	}
	assert.Equal(t, expected, got)
}

func TestAdmissibleCutsPrunedPlusTrunkOrder(t *testing.T) {
	leaf := tree.Leaf()
	trees := []tree.Tree{
		tree.New(leaf),
		tree.New(leaf, leaf),
		tree.New(tree.New(leaf), leaf),
		tree.New(leaf, leaf, leaf),
		tree.New(tree.New(leaf, leaf)),
	}

	// Every cut partitions the nodes of the original tree.
	for _, tr := range trees {
		for i, cut := range AdmissibleCuts(tr) {
			assert.Equal(t, tr.Order(), cut.Pruned.Order()+cut.Trunk.Order(),
				"cut %d of %s", i, tr)
		}
	}
}

func TestCoproductLeaf(t *testing.T) {
	terms := Coproduct(tree.Leaf())

	require.Len(t, terms, 2)
	assert.Equal(t, "()", terms[0].Left.Notation())
	assert.True(t, terms[0].Right.IsLeaf())
	assert.Empty(t, terms[1].Left)
	assert.True(t, terms[1].Right.IsLeaf())
}

func TestCoproductTermCount(t *testing.T) {
	leaf := tree.Leaf()
	trees := []tree.Tree{
		leaf,
		tree.New(leaf),
		tree.New(leaf, leaf),
		tree.New(tree.New(leaf)),
		tree.New(tree.New(leaf), leaf),
		tree.New(leaf, leaf, leaf),
	}

	for _, tr := range trees {
		terms := Coproduct(tr)
		cuts := AdmissibleCuts(tr)
		assert.Len(t, terms, 2+len(cuts), "coproduct of %s", tr)
	}
}

func TestCoproductBoundaryTermsFirst(t *testing.T) {
	leaf := tree.Leaf()
	tr := tree.New(leaf, leaf)

	terms := Coproduct(tr)
	require.Len(t, terms, 5)

	// term 1: t (x) 1
	require.Len(t, terms[0].Left, 1)
	assert.True(t, terms[0].Left[0].Equal(tr))
	assert.True(t, terms[0].Right.IsLeaf())

	// term 2: 1 (x) t
	assert.Empty(t, terms[1].Left)
	assert.True(t, terms[1].Right.Equal(tr))
}
