package hopf

import (
	"fmt"

	"github.com/orgitcog/froot/internal/tree"
)

// Character is an algebra morphism from rooted trees into a target algebra,
// extended multiplicatively over forests. Characters are immutable values;
// Convolve builds a new one closed over the coproduct.
type Character[V any] struct {
	name string
	alg  Algebra[V]
	eval func(tree.Tree) V
}

// NewCharacter wraps an evaluation function and its target algebra.
func NewCharacter[V any](name string, alg Algebra[V], eval func(tree.Tree) V) Character[V] {
	return Character[V]{name: name, alg: alg, eval: eval}
}

// Name returns the character's display name.
func (c Character[V]) Name() string {
	return c.name
}

// Algebra returns the character's target algebra.
func (c Character[V]) Algebra() Algebra[V] {
	return c.alg
}

// Evaluate applies the character to a single tree.
func (c Character[V]) Evaluate(t tree.Tree) V {
	return c.eval(t)
}

// EvaluateForest folds the character multiplicatively over a forest.
// The empty forest evaluates to the algebra's unit.
func (c Character[V]) EvaluateForest(f tree.Forest) V {
	acc := c.alg.One()
	for _, t := range f {
		acc = c.alg.Mul(acc, c.Evaluate(t))
	}
	return acc
}

// Convolve returns the convolution product of c with other:
//
//	(c * other)(t) = sum over coproduct terms L (x) R of c(L) . other(R)
//
// where c(L) is the multiplicative extension over the left forest. Both
// characters must share a target algebra.
func (c Character[V]) Convolve(other Character[V]) Character[V] {
	conv := func(t tree.Tree) V {
		acc := c.alg.Zero()
		for _, term := range Coproduct(t) {
			left := c.EvaluateForest(term.Left)
			right := other.Evaluate(term.Right)
			acc = c.alg.Add(acc, c.alg.Mul(left, right))
		}
		return acc
	}
	return NewCharacter(fmt.Sprintf("(%s*%s)", c.name, other.name), c.alg, conv)
}
