// Package prime provides the shared prime-number utilities: a trial-division
// primality test, a memoized 1-indexed nth-prime lookup, prime indexing, and
// ascending prime factorization.
//
// The nth-prime cache is append-only and guarded by a single mutex: reads of
// already-populated entries are cheap, and first-time population from multiple
// goroutines is serialized so the scan is never duplicated.
package prime

import (
	"fmt"
	"sync"
)

// IndexError is returned when a 1-indexed prime position is out of range.
type IndexError struct {
	N int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("prime index must be >= 1, got %d", e.N)
}

// DepthError is returned when a tower depth is negative.
type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("tower depth must be >= 0, got %d", e.Depth)
}

// cache holds every nth-prime computed so far: cache.primes[i] is the
// (i+1)-th prime. Never reset, never shrunk.
var cache = struct {
	mu     sync.Mutex
	primes []int
}{
	primes: []int{2},
}

// IsPrime reports whether n is prime, by trial division up to sqrt(n).
// Values below 2 are not prime (not an error).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// NthPrime returns the nth prime, 1-indexed (NthPrime(1) == 2).
// Returns *IndexError for n < 1.
//
// The naive upward scan makes this impractical for n much beyond 2e5; that
// limit is documented rather than fixed, matching the scope of the engine.
func NthPrime(n int) (int, error) {
	if n < 1 {
		return 0, &IndexError{N: n}
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	for len(cache.primes) < n {
		candidate := cache.primes[len(cache.primes)-1] + 1
		for !IsPrime(candidate) {
			candidate++
		}
		cache.primes = append(cache.primes, candidate)
	}
	return cache.primes[n-1], nil
}

// Index returns the 1-indexed position of p in the prime sequence,
// or 0 if p is not prime.
func Index(p int) int {
	if !IsPrime(p) {
		return 0
	}
	count := 0
	for n := 2; n <= p; n++ {
		if IsPrime(n) {
			count++
			if n == p {
				return count
			}
		}
	}
	return 0
}

// Factorize returns the prime factors of n in ascending order with
// multiplicity. n <= 1 yields an empty slice.
func Factorize(n int) []int {
	factors := []int{}
	if n <= 1 {
		return factors
	}
	for d := 2; d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
