package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func runScenarioFile(t *testing.T, name string) *Result {
	t.Helper()
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
	require.NoError(t, err)
	result, err := Run(scenario)
	require.NoError(t, err)
	return result
}

func TestScenarioGoldens(t *testing.T) {
	entries, err := os.ReadDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		name := entry.Name()
		name = name[:len(name)-len(filepath.Ext(name))]
		t.Run(name, func(t *testing.T) {
			result := runScenarioFile(t, name)
			assert.True(t, result.Passed)

			snapshot, err := Snapshot(result)
			require.NoError(t, err)
			golden(t).Assert(t, name, snapshot)
		})
	}
}

func TestRunReportsFailure(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: mismatch
checks:
  - op: encode
    notation: "(())"
    expect:
      matula: 99
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Checks, 1)
	assert.False(t, result.Checks[0].Pass)
	assert.Contains(t, result.Checks[0].Detail, "want 99")
	assert.Equal(t, map[string]any{"matula": 2}, result.Checks[0].Got)
}

func TestRunFailsCheckOnBadNotation(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: malformed
checks:
  - op: cuts
    notation: "((()"
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Checks[0].Detail, "cuts:")
}

func TestRunRejectsUnknownOp(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: unknown
checks:
  - op: transmute
`))
	require.NoError(t, err)

	_, err = Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown op")
}

func TestParseScenarioValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing name", "checks:\n  - op: encode\n", "missing name"},
		{"no checks", "name: empty\n", "no checks"},
		{"check missing op", "name: holes\nchecks:\n  - notation: \"()\"\n", "missing op"},
		{"bad yaml", "name: [\n", "parse scenario"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
