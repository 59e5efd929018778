package hopf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgitcog/froot/internal/tree"
)

// nodeCount is the counting character: each tree maps to its order.
func nodeCount(alg Algebra[float64]) Character[float64] {
	return NewCharacter("phi", alg, func(t tree.Tree) float64 {
		return float64(t.Order())
	})
}

func TestEvaluateForest(t *testing.T) {
	phi := nodeCount(Float64Algebra{})
	leaf := tree.Leaf()

	assert.Equal(t, 1.0, phi.EvaluateForest(tree.Forest{}))
	assert.Equal(t, 1.0, phi.EvaluateForest(tree.Forest{leaf}))
	assert.Equal(t, 2.0, phi.EvaluateForest(tree.Forest{leaf, tree.New(leaf)}))
	assert.Equal(t, 6.0, phi.EvaluateForest(tree.Forest{tree.New(leaf), tree.New(leaf, leaf)}))
}

func TestConvolveLeaf(t *testing.T) {
	phi := nodeCount(Float64Algebra{})
	conv := phi.Convolve(phi)

	// Two boundary terms only: phi({leaf})*phi(leaf) + One*phi(leaf).
	assert.Equal(t, 2.0, conv.Evaluate(tree.Leaf()))
	assert.Equal(t, "(phi*phi)", conv.Name())
}

func TestConvolveTwoCorolla(t *testing.T) {
	phi := nodeCount(Float64Algebra{})
	leaf := tree.Leaf()
	corolla := tree.New(leaf, leaf)

	// Hand-computed over the five coproduct terms:
	// 3*1 + 1*3 + 1*2 + 1*2 + 1*1 = 11.
	conv := phi.Convolve(phi)
	assert.Equal(t, 11.0, conv.Evaluate(corolla))
}

// tropical is a min-plus style algebra whose unit is 0, not 1. It exercises
// the explicit capability contract: the empty-forest fold must start at
// One(), not at the numeric literal.
type tropical struct{}

func (tropical) Zero() float64            { return math.Inf(-1) }
func (tropical) One() float64             { return 0 }
func (tropical) Add(a, b float64) float64 { return math.Max(a, b) }
func (tropical) Mul(a, b float64) float64 { return a + b }
func (tropical) Neg(a float64) float64    { return -a }

func TestNonNumericUnitAlgebra(t *testing.T) {
	phi := nodeCount(tropical{})

	// Empty forest folds to the tropical unit 0, not 1.
	assert.Equal(t, 0.0, phi.EvaluateForest(tree.Forest{}))

	// (phi*phi)(leaf) = max(1+1, 0+1) = 2 in the tropical algebra.
	conv := phi.Convolve(phi)
	assert.Equal(t, 2.0, conv.Evaluate(tree.Leaf()))
}

func TestCharacterAccessors(t *testing.T) {
	phi := nodeCount(Float64Algebra{})
	assert.Equal(t, "phi", phi.Name())
	assert.Equal(t, Float64Algebra{}, phi.Algebra())
	assert.Equal(t, 4.0, phi.Evaluate(tree.New(tree.Leaf(), tree.Leaf(), tree.Leaf())))
}
