package tree

import "fmt"

// maxEnumerableOrder bounds explicit shape enumeration. Orders beyond this
// need a real canonical-generation algorithm; counts for larger orders are
// available from the ion package instead.
const maxEnumerableOrder = 4

// EnumerationError is returned when explicit tree enumeration is requested
// beyond the supported order.
type EnumerationError struct {
	Order int
	Max   int
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("tree enumeration not implemented for order %d (max %d)", e.Order, e.Max)
}

// Enumerate returns every distinct unlabeled rooted tree with exactly n
// nodes, for n up to 4. Orders <= 0 yield an empty slice. Larger orders
// return an *EnumerationError.
func Enumerate(n int) ([]Tree, error) {
	if n <= 0 {
		return []Tree{}, nil
	}

	leaf := Leaf()
	switch n {
	case 1:
		return []Tree{leaf}, nil
	case 2:
		return []Tree{New(leaf)}, nil
	case 3:
		return []Tree{
			New(New(leaf)),  // chain of 3
			New(leaf, leaf), // 2-corolla
		}, nil
	case 4:
		return []Tree{
			New(New(New(leaf))),   // chain of 4
			New(New(leaf, leaf)),  // root over 2-corolla
			New(New(leaf), leaf),  // mixed
			New(leaf, leaf, leaf), // ternary corolla
		}, nil
	}
	return nil, &EnumerationError{Order: n, Max: maxEnumerableOrder}
}
