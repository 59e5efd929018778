package prime

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n        int
		expected bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{17, true},
		{25, false},
		{97, true},
		{19577, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsPrime(tt.n), "IsPrime(%d)", tt.n)
	}
}

func TestNthPrimeFirstTen(t *testing.T) {
	expected := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	for i, want := range expected {
		got, err := NthPrime(i + 1)
		require.NoError(t, err)
		assert.Equal(t, want, got, "NthPrime(%d)", i+1)
	}
}

func TestNthPrimeInvalidIndex(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := NthPrime(n)
		require.Error(t, err)

		var idxErr *IndexError
		require.True(t, errors.As(err, &idxErr))
		assert.Equal(t, n, idxErr.N)
	}
}

func TestNthPrimeConcurrentPopulation(t *testing.T) {
	// All goroutines race to populate the same cache range; every reader
	// must observe the correct value.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := NthPrime(100)
			assert.NoError(t, err)
			assert.Equal(t, 541, got)
		}()
	}
	wg.Wait()
}

func TestIndex(t *testing.T) {
	tests := []struct {
		p        int
		expected int
	}{
		{2, 1},
		{3, 2},
		{5, 3},
		{29, 10},
		{4, 0},  // not prime
		{1, 0},  // below range
		{-3, 0}, // below range
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Index(tt.p), "Index(%d)", tt.p)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for n := 1; n <= 50; n++ {
		p, err := NthPrime(n)
		require.NoError(t, err)
		assert.Equal(t, n, Index(p))
	}
}

func TestFactorize(t *testing.T) {
	tests := []struct {
		n        int
		expected []int
	}{
		{0, []int{}},
		{1, []int{}},
		{2, []int{2}},
		{6, []int{2, 3}},
		{8, []int{2, 2, 2}},
		{12, []int{2, 2, 3}},
		{97, []int{97}},
		{360, []int{2, 2, 2, 3, 3, 5}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Factorize(tt.n), "Factorize(%d)", tt.n)
	}
}

func TestTowerOctonionicSeed(t *testing.T) {
	tower, err := Tower(8, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 19, 67, 331, 2221, 19577}, tower)
}

func TestTowerSmallSeed(t *testing.T) {
	tower, err := Tower(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 11, 31}, tower)
}

func TestTowerZeroDepth(t *testing.T) {
	tower, err := Tower(42, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{42}, tower)
}

func TestTowerInvalidArgs(t *testing.T) {
	_, err := Tower(0, 3)
	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))

	_, err = Tower(8, -1)
	var depthErr *DepthError
	require.True(t, errors.As(err, &depthErr))
}
