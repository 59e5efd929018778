// Package hopf implements the combinatorial coalgebra layer over rooted
// trees: admissible cuts, the cut-derived coproduct, characters into a target
// algebra, and antipode evaluation through a character.
//
// All enumeration here is deterministic. AdmissibleCuts fixes the cut order
// and everything downstream (coproduct terms, convolution sums) inherits it.
// Costs are exponential in branching factor; callers are expected to bound
// tree size.
package hopf

import "github.com/orgitcog/froot/internal/tree"

// Cut is one admissible cut of a tree: the pruned forest that was severed
// and the trunk that remains attached to the root.
type Cut struct {
	Pruned tree.Forest
	Trunk  tree.Tree
}

// AdmissibleCuts enumerates every admissible cut of t.
//
// A leaf has no cuts. For a root with k children, each non-empty subset of
// children can be pruned whole (2^k - 1 outer cuts, in increasing bitmask
// order); after each outer cut, cuts inside every remaining child are
// combined in, replacing that child with the inner trunk and unioning the
// pruned forests. The empty subset (cut nothing) is not a cut here; it is
// covered by the coproduct's boundary terms.
func AdmissibleCuts(t tree.Tree) []Cut {
	if t.IsLeaf() {
		return nil
	}

	children := t.Children()
	k := len(children)
	var cuts []Cut

	for mask := 1; mask < 1<<k; mask++ {
		var pruned tree.Forest
		var remaining []tree.Tree
		for i, child := range children {
			if mask&(1<<i) != 0 {
				pruned = append(pruned, child)
			} else {
				remaining = append(remaining, child)
			}
		}

		trunk := tree.New(remaining...)
		cuts = append(cuts, Cut{Pruned: pruned, Trunk: trunk})

		// Deeper cuts inside each remaining child, appended directly
		// after the outer cut they extend.
		for idx, child := range remaining {
			for _, inner := range AdmissibleCuts(child) {
				merged := make([]tree.Tree, len(remaining))
				copy(merged, remaining)
				merged[idx] = inner.Trunk

				combined := make(tree.Forest, 0, len(pruned)+len(inner.Pruned))
				combined = append(combined, pruned...)
				combined = append(combined, inner.Pruned...)

				cuts = append(cuts, Cut{
					Pruned: combined,
					Trunk:  tree.New(merged...),
				})
			}
		}
	}

	return cuts
}
