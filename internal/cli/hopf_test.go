package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutsCommandTwoCorolla(t *testing.T) {
	out, err := execute(t, "cuts", "(()())")
	require.NoError(t, err)
	assert.Equal(t,
		"1: () | (())\n"+
			"2: () | (())\n"+
			"3: ()() | ()\n"+
			"3 admissible cut(s)\n",
		out)
}

func TestCutsCommandLeaf(t *testing.T) {
	out, err := execute(t, "cuts", "()")
	require.NoError(t, err)
	assert.Equal(t, "0 admissible cut(s)\n", out)
}

func TestCutsCommandJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "cuts", "(()())")
	require.NoError(t, err)
	assert.Contains(t, out, `"count": 3`)
	assert.Contains(t, out, `"pruned": "()()"`)
}

func TestCoproductCommandLeaf(t *testing.T) {
	out, err := execute(t, "coproduct", "()")
	require.NoError(t, err)
	assert.Equal(t,
		"() (x) ()\n"+
			"1 (x) ()\n"+
			"2 term(s)\n",
		out)
}

func TestCoproductCommandSingleChild(t *testing.T) {
	out, err := execute(t, "coproduct", "(())")
	require.NoError(t, err)
	assert.Equal(t,
		"(()) (x) ()\n"+
			"1 (x) (())\n"+
			"() (x) ()\n"+
			"3 term(s)\n",
		out)
}

func TestRenormCommandLeaf(t *testing.T) {
	out, err := execute(t, "renorm", "()")
	require.NoError(t, err)
	assert.Equal(t, "S[node-count](()) = -1\n", out)
}

func TestRenormCommandTwoCorolla(t *testing.T) {
	// S vanishes on the 2-corolla for the node-count character.
	out, err := execute(t, "renorm", "(()())")
	require.NoError(t, err)
	assert.Equal(t, "S[node-count]((()())) = 0\n", out)
}

func TestRenormCommandChain(t *testing.T) {
	out, err := execute(t, "renorm", "((()))")
	require.NoError(t, err)
	assert.Equal(t, "S[node-count](((()))) = -2\n", out)
}

func TestRenormCommandBadNotation(t *testing.T) {
	_, err := execute(t, "renorm", ")(")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
