// Package ion implements the tree-count recursion: exact counts of unlabeled
// rooted trees by order (OEIS A000081) and the derived per-order layer record
// splitting each total into a fiber carried over from the previous order and
// a base of genuinely new shapes, alongside a prime-tower maximum shell.
package ion

import (
	"fmt"
	"sync"

	"github.com/orgitcog/froot/internal/prime"
)

// a000081 holds the rooted unlabeled tree counts; a000081[n] is the count
// for n nodes. Counts beyond the table are a deliberate scope limit, not a
// missing feature: the engine never needs them.
var a000081 = [...]int{
	0, 1, 1, 2, 4, 9, 20, 48, 115, 286, 719,
	1842, 4766, 12486, 32973, 87811, 235381, 634847, 1721159, 4688676, 12826228,
}

// MaxCountedOrder is the largest order TreeCount can answer for.
const MaxCountedOrder = len(a000081) - 1

// RangeError is returned when a tree count is requested beyond the
// precomputed table.
type RangeError struct {
	N   int
	Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tree count not implemented for order %d (precomputed up to %d)", e.N, e.Max)
}

// OrderError is returned for a negative layer order.
type OrderError struct {
	N int
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("layer order must be >= 0, got %d", e.N)
}

// TreeCount returns the number of unlabeled rooted trees with n nodes.
// Non-positive n counts zero trees. Orders beyond the table return a
// *RangeError.
func TreeCount(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	if n > MaxCountedOrder {
		return 0, &RangeError{N: n, Max: MaxCountedOrder}
	}
	return a000081[n], nil
}

// Layer is the per-order record of the tree-count recursion.
//
// Total counts all shapes at this order, Fiber is the carryover from the
// previous order (nested subtree injection), Base is what is genuinely new,
// and MaxShell tracks the iterated prime-indexing maximum.
type Layer struct {
	Order    int
	Fiber    int
	Base     int
	Total    int
	MaxShell int
}

// layers is the append-only memo: layers[n] is the record for order n.
// Extension is serialized by the mutex; populated entries never change.
var layers = struct {
	mu   sync.Mutex
	recs []Layer
}{}

// At returns the layer record for order n >= 0, computing and memoizing
// every record up to n.
//
// Recursion:
//
//	n == 0: {fiber 0, base 1, total 1, maxShell 1}
//	n >= 1: total = TreeCount(n+1)
//	        fiber = 1 for n == 1, else Total(n-1)
//	        base  = total - fiber
//	        maxShell = 2^n for n <= 3, 8 for n == 4,
//	                   nthPrime(MaxShell(n-1)) for n >= 5
//
// Invariants: Total == Fiber + Base for all n, Fiber(n) == Total(n-1) for
// n >= 2.
func At(n int) (Layer, error) {
	if n < 0 {
		return Layer{}, &OrderError{N: n}
	}

	layers.mu.Lock()
	defer layers.mu.Unlock()

	for len(layers.recs) <= n {
		next := len(layers.recs)
		rec, err := computeLayer(next, layers.recs)
		if err != nil {
			return Layer{}, err
		}
		layers.recs = append(layers.recs, rec)
	}
	return layers.recs[n], nil
}

// computeLayer builds the record for order n given all previous records.
func computeLayer(n int, prev []Layer) (Layer, error) {
	if n == 0 {
		return Layer{Order: 0, Fiber: 0, Base: 1, Total: 1, MaxShell: 1}, nil
	}

	total, err := TreeCount(n + 1)
	if err != nil {
		return Layer{}, err
	}

	fiber := 1
	if n > 1 {
		fiber = prev[n-1].Total
	}

	var maxShell int
	switch {
	case n <= 3:
		maxShell = 1 << n
	case n == 4:
		maxShell = 8
	default:
		maxShell, err = prime.NthPrime(prev[n-1].MaxShell)
		if err != nil {
			return Layer{}, err
		}
	}

	return Layer{
		Order:    n,
		Fiber:    fiber,
		Base:     total - fiber,
		Total:    total,
		MaxShell: maxShell,
	}, nil
}

// Sequence returns the layer records for orders 0 through max inclusive.
func Sequence(max int) ([]Layer, error) {
	if max < 0 {
		return nil, &OrderError{N: max}
	}
	if _, err := At(max); err != nil {
		return nil, err
	}

	layers.mu.Lock()
	defer layers.mu.Unlock()
	out := make([]Layer, max+1)
	copy(out, layers.recs[:max+1])
	return out, nil
}

// BaseIncrement returns the number of genuinely new shapes at order n: the
// base component of the layer record.
func BaseIncrement(n int) (int, error) {
	layer, err := At(n)
	if err != nil {
		return 0, err
	}
	return layer.Base, nil
}
