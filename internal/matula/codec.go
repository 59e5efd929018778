// Package matula implements the Matula-Goebel bijection between positive
// integers and finite rooted trees via iterated prime indexing.
//
// A leaf encodes to 1. A tree with children t1..tk encodes to the product of
// nthPrime(encode(ti)). Decoding factors the integer, maps each prime factor
// to its 1-indexed position in the prime sequence, and decodes those
// positions recursively.
//
// Encode(Decode(m)) == m holds for every m >= 1. The reverse composition
// preserves only the integer: prime multiplication is commutative, so trees
// differing in child order share a code, and decoding rebuilds children in
// ascending-factor order. This collapsing is intentional in the codec, not a
// defect of the tree model.
package matula

import (
	"fmt"
	"math"

	"github.com/orgitcog/froot/internal/prime"
	"github.com/orgitcog/froot/internal/tree"
)

// OverflowError is returned when a tree's code does not fit in an int.
type OverflowError struct {
	Notation string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("matula code of %s overflows int", e.Notation)
}

// Encode returns the Matula-Goebel code of t. A leaf encodes to 1.
//
// Codes grow through the nth-prime lookup, so encoding is only practical for
// trees whose subtree codes stay within the nth-prime scan range.
func Encode(t tree.Tree) (int, error) {
	if t.IsLeaf() {
		return 1, nil
	}
	code := 1
	for _, child := range t.Children() {
		childCode, err := Encode(child)
		if err != nil {
			return 0, err
		}
		p, err := prime.NthPrime(childCode)
		if err != nil {
			return 0, err
		}
		if code > math.MaxInt/p {
			return 0, &OverflowError{Notation: t.Notation()}
		}
		code *= p
	}
	return code, nil
}

// Decode returns the rooted tree encoded by m. Values m <= 1 decode to a
// leaf. Children are rebuilt in ascending-factor order, which is the only
// order the integer remembers.
func Decode(m int) tree.Tree {
	if m <= 1 {
		return tree.Leaf()
	}
	var children []tree.Tree
	for _, p := range prime.Factorize(m) {
		children = append(children, Decode(prime.Index(p)))
	}
	return tree.New(children...)
}

// Notation returns the bracket notation of the tree encoded by m.
func Notation(m int) string {
	return Decode(m).Notation()
}

// FromNotation parses bracket notation and returns its Matula code. This is
// the string-level twin of Encode: malformed input surfaces the parser's
// *tree.SyntaxError.
func FromNotation(s string) (int, error) {
	t, err := tree.Parse(s)
	if err != nil {
		return 0, err
	}
	return Encode(t)
}

// Graft is the B+ operator in Matula coordinates: adding a root above the
// tree encoded by m yields the code nthPrime(m). m < 1 is rejected with
// *prime.IndexError.
func Graft(m int) (int, error) {
	return prime.NthPrime(m)
}
