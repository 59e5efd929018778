package prime

// Tower generates the iterated nth-prime sequence from seed: each element is
// the nth prime of the previous one. The result has length depth+1 and starts
// with the seed itself.
//
// In Matula coordinates this is repeated unary grafting: adding a single root
// above the tree encoded by the current value.
//
//	Tower(8, 5) == [8, 19, 67, 331, 2221, 19577]
func Tower(seed, depth int) ([]int, error) {
	if seed < 1 {
		return nil, &IndexError{N: seed}
	}
	if depth < 0 {
		return nil, &DepthError{Depth: depth}
	}

	tower := make([]int, 0, depth+1)
	tower = append(tower, seed)
	current := seed
	for i := 0; i < depth; i++ {
		next, err := NthPrime(current)
		if err != nil {
			return nil, err
		}
		tower = append(tower, next)
		current = next
	}
	return tower, nil
}
