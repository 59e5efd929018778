package hopf

import "github.com/orgitcog/froot/internal/tree"

// Renormalize evaluates the antipode of t through the character c:
//
//	S(t) = -t - sum over admissible cuts of S(pruned) . trunk
//
// expanded directly in the target algebra. No symbolic negative tree exists;
// the recursion subtracts each cut's counterterm as it goes, with the pruned
// forest evaluated under S tree by tree (empty forest folds to One).
//
// Recursion depth is bounded by the tree's order; branching cost follows the
// cut enumeration.
func Renormalize[V any](c Character[V], t tree.Tree) V {
	alg := c.Algebra()
	result := alg.Neg(c.Evaluate(t))
	if t.IsLeaf() {
		return result
	}

	for _, cut := range AdmissibleCuts(t) {
		prunedVal := alg.One()
		for _, pt := range cut.Pruned {
			prunedVal = alg.Mul(prunedVal, Renormalize(c, pt))
		}
		trunkVal := c.Evaluate(cut.Trunk)
		result = alg.Add(result, alg.Neg(alg.Mul(prunedVal, trunkVal)))
	}
	return result
}
