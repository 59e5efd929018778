// Package eigen treats the nth prime as the eigenvalue of the ensemble
// structure of its index: the index's divisors, partitions, and prime
// factorization are the encapsulated ensemble, the prime is its purified
// identity, and the prime's multiples are the projection of that identity.
package eigen

import (
	"github.com/orgitcog/froot/internal/prime"
)

// Ensemble pairs an index with its prime eigenvalue and the structural data
// the prime inherits.
type Ensemble struct {
	Index          int   `json:"index"`
	Prime          int   `json:"prime"`
	Divisors       []int `json:"divisors"`
	Factors        []int `json:"factors"`
	PartitionCount int   `json:"partition_count"`
	IndexIsPrime   bool  `json:"index_is_prime"`
}

// Eigenvalue computes the ensemble for index n >= 1.
func Eigenvalue(n int) (Ensemble, error) {
	p, err := prime.NthPrime(n)
	if err != nil {
		return Ensemble{}, err
	}
	return Ensemble{
		Index:          n,
		Prime:          p,
		Divisors:       divisors(n),
		Factors:        prime.Factorize(n),
		PartitionCount: partitionCount(n),
		IndexIsPrime:   prime.IsPrime(n),
	}, nil
}

// Sequence computes ensembles for indices 1 through count.
func Sequence(count int) ([]Ensemble, error) {
	if count < 1 {
		return nil, &prime.IndexError{N: count}
	}
	out := make([]Ensemble, 0, count)
	for n := 1; n <= count; n++ {
		e, err := Eigenvalue(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Project returns the sorted multiples of the ensemble's prime up to limit.
func (e Ensemble) Project(limit int) []int {
	multiples := []int{}
	for m := e.Prime; m <= limit; m += e.Prime {
		multiples = append(multiples, m)
	}
	return multiples
}

// ProjectionDensity returns the fraction of integers in [1, limit] that are
// multiples of the ensemble's prime.
func (e Ensemble) ProjectionDensity(limit int) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(len(e.Project(limit))) / float64(limit)
}

// divisors returns all positive divisors of n in ascending order.
func divisors(n int) []int {
	if n <= 0 {
		return []int{}
	}
	var small, large []int
	for d := 1; d*d <= n; d++ {
		if n%d == 0 {
			small = append(small, d)
			if d != n/d {
				large = append(large, n/d)
			}
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}

// partitionCount counts the integer partitions of n with the standard
// bounded-part recurrence, avoiding the exponential cost of materializing
// the partitions themselves.
func partitionCount(n int) int {
	if n < 0 {
		return 0
	}
	// count[i] = partitions of i using parts considered so far
	count := make([]int, n+1)
	count[0] = 1
	for part := 1; part <= n; part++ {
		for i := part; i <= n; i++ {
			count[i] += count[i-part]
		}
	}
	return count[n]
}
