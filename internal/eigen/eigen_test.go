package eigen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEigenvalueBasics(t *testing.T) {
	e, err := Eigenvalue(4)
	require.NoError(t, err)

	assert.Equal(t, 4, e.Index)
	assert.Equal(t, 7, e.Prime)
	assert.Equal(t, []int{1, 2, 4}, e.Divisors)
	assert.Equal(t, []int{2, 2}, e.Factors)
	assert.Equal(t, 5, e.PartitionCount) // 4, 3+1, 2+2, 2+1+1, 1+1+1+1
	assert.False(t, e.IndexIsPrime)
}

func TestEigenvaluePrimeIndex(t *testing.T) {
	e, err := Eigenvalue(5)
	require.NoError(t, err)
	assert.Equal(t, 11, e.Prime)
	assert.True(t, e.IndexIsPrime)
}

func TestEigenvalueInvalidIndex(t *testing.T) {
	_, err := Eigenvalue(0)
	require.Error(t, err)
}

func TestSequence(t *testing.T) {
	seq, err := Sequence(6)
	require.NoError(t, err)
	require.Len(t, seq, 6)

	primes := make([]int, len(seq))
	for i, e := range seq {
		primes[i] = e.Prime
	}
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13}, primes)
}

func TestSequenceInvalidCount(t *testing.T) {
	_, err := Sequence(0)
	require.Error(t, err)
}

func TestProject(t *testing.T) {
	e, err := Eigenvalue(3) // prime 5
	require.NoError(t, err)

	assert.Equal(t, []int{5, 10, 15, 20}, e.Project(20))
	assert.Empty(t, e.Project(4))
	assert.InDelta(t, 0.2, e.ProjectionDensity(100), 1e-9)
	assert.Zero(t, e.ProjectionDensity(0))
}

func TestPartitionCounts(t *testing.T) {
	// p(n) for n = 0..10: 1 1 2 3 5 7 11 15 22 30 42
	expected := []int{1, 1, 2, 3, 5, 7, 11, 15, 22, 30, 42}
	for n, want := range expected {
		assert.Equal(t, want, partitionCount(n), "p(%d)", n)
	}
}

func TestDivisors(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, divisors(12))
	assert.Equal(t, []int{1}, divisors(1))
	assert.Equal(t, []int{1, 7}, divisors(7))
	assert.Equal(t, []int{1, 2, 3, 6, 9, 18}, divisors(18))
	assert.Equal(t, []int{1, 2, 4, 8, 16}, divisors(16))
}
