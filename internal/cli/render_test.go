package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/orgitcog/froot/internal/ion"
	"github.com/orgitcog/froot/internal/persona"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderLayerTableGolden(t *testing.T) {
	seq, err := ion.Sequence(5)
	require.NoError(t, err)
	golden(t).Assert(t, "layer-table", []byte(RenderLayerTable(seq)))
}

func TestRenderPersonaTableGolden(t *testing.T) {
	rows, err := persona.Table(6)
	require.NoError(t, err)
	golden(t).Assert(t, "persona-table", []byte(RenderPersonaTable(rows)))
}
