package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaCommand(t *testing.T) {
	out, err := execute(t, "persona", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "structure: (()(()))")
	assert.Contains(t, out, "type:      mixed_binary_ternary")
	assert.Contains(t, out, "character: first mixed ensemble, 2x3")
	assert.Contains(t, out, "factors:   [2 3]")
}

func TestPersonaCommandJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "persona", "9")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "squared_ternary"`)
}

func TestPersonaTableCommand(t *testing.T) {
	out, err := execute(t, "persona-table", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "squared_binary")
}

func TestPersonaTableCommandInvalidMax(t *testing.T) {
	_, err := execute(t, "persona-table", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGrammarCommand(t *testing.T) {
	out, err := execute(t, "grammar", "13")
	require.NoError(t, err)
	assert.Contains(t, out, "alphabet: [2 3 5 7 11 13] (6 primes <= 13)")
	assert.Contains(t, out, "Can mix binary and ternary (2x3 ensemble)")
}

func TestEigenCommand(t *testing.T) {
	out, err := execute(t, "eigen", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "prime:      7")
	assert.Contains(t, out, "divisors:   [1 2 4]")
	assert.Contains(t, out, "partitions: 5")
}

func TestEigenCommandProjection(t *testing.T) {
	out, err := execute(t, "eigen", "3", "--project", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "projection: [5 10 15 20]")
	assert.Contains(t, out, "density 0.2000")
}

func TestEigenCommandInvalidIndex(t *testing.T) {
	_, err := execute(t, "eigen", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
