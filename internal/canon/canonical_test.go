package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalScalars(t *testing.T) {
	tests := []struct {
		in       any
		expected string
	}{
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(-7), "-7"},
		{"hello", `"hello"`},
		{"", `""`},
	}

	for _, tt := range tests {
		got, err := Marshal(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, string(got))
	}
}

func TestMarshalSortsKeysUTF16(t *testing.T) {
	got, err := Marshal(map[string]any{
		"zebra": 1,
		"apple": 2,
		"A":     3,
		"a":     4,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"A":3,"a":4,"apple":2,"zebra":1}`, string(got))
}

func TestMarshalNested(t *testing.T) {
	got, err := Marshal(map[string]any{
		"checks": []any{
			map[string]any{"op": "encode", "pass": true},
		},
		"name": "basics",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"checks":[{"op":"encode","pass":true}],"name":"basics"}`, string(got))
}

func TestMarshalNoHTMLEscaping(t *testing.T) {
	got, err := Marshal("<a> & </a>")
	require.NoError(t, err)
	assert.Equal(t, `"<a> & </a>"`, string(got))
}

func TestMarshalEscapesControls(t *testing.T) {
	got, err := Marshal("line\nbreak\ttab \"quote\" back\\slash")
	require.NoError(t, err)
	assert.Equal(t, `"line\nbreak\ttab \"quote\" back\\slash"`, string(got))
}

func TestMarshalRejectsFloats(t *testing.T) {
	_, err := Marshal(3.14)
	require.Error(t, err)

	_, err = Marshal(map[string]any{"x": 1.0})
	require.Error(t, err)
}

func TestMarshalRejectsNull(t *testing.T) {
	_, err := Marshal(nil)
	require.Error(t, err)

	_, err = Marshal([]any{nil})
	require.Error(t, err)
}

func TestMarshalDeterministic(t *testing.T) {
	payload := map[string]any{
		"matula": 8, "notation": "(()()())", "order": 4,
	}
	a, err := Marshal(payload)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		b, err := Marshal(payload)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestHashDomainSeparation(t *testing.T) {
	data := []byte("payload")
	assert.NotEqual(t, Hash(DomainResult, data), Hash(DomainRun, data))
	assert.Equal(t, Hash(DomainResult, data), Hash(DomainResult, data))
	assert.Len(t, Hash(DomainResult, data), 64)
}

func TestResultIDStable(t *testing.T) {
	payload := map[string]any{"matula": 6}

	a, err := ResultID("encode", "(()(()))", payload)
	require.NoError(t, err)
	b, err := ResultID("encode", "(()(()))", payload)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := ResultID("decode", "(()(()))", payload)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestResultIDRejectsFloatPayload(t *testing.T) {
	_, err := ResultID("renorm", "()", map[string]any{"value": -1.5})
	require.Error(t, err)
}
