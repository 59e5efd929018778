package hopf

import "github.com/orgitcog/froot/internal/tree"

// Term is one tensor term of the coproduct: a forest on the left, a tree on
// the right. Duplicate terms are kept as-is; there is no coefficient
// collapsing.
type Term struct {
	Left  tree.Forest
	Right tree.Tree
}

// Coproduct returns the full coproduct of t as an ordered term list:
//
//	t (x) 1  +  1 (x) t  +  sum over admissible cuts of pruned (x) trunk
//
// The two boundary terms always come first, then the cuts in enumerator
// order. A leaf therefore yields exactly two terms, and in general
// len(Coproduct(t)) == 2 + len(AdmissibleCuts(t)).
func Coproduct(t tree.Tree) []Term {
	cuts := AdmissibleCuts(t)
	terms := make([]Term, 0, 2+len(cuts))

	terms = append(terms, Term{Left: tree.Forest{t}, Right: tree.Leaf()})
	terms = append(terms, Term{Left: tree.Forest{}, Right: t})
	for _, cut := range cuts {
		terms = append(terms, Term{Left: cut.Pruned, Right: cut.Trunk})
	}
	return terms
}
