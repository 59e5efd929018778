package cli

import (
	"fmt"
	"strings"

	"github.com/orgitcog/froot/internal/ion"
	"github.com/orgitcog/froot/internal/persona"
)

// RenderLayerTable renders the layer sequence report as fixed-width text.
func RenderLayerTable(layers []ion.Layer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-6s %-6s %-6s %s\n", "ORDER", "FIBER", "BASE", "TOTAL", "MAXSHELL")
	for _, l := range layers {
		fmt.Fprintf(&b, "%-6d %-6d %-6d %-6d %d\n", l.Order, l.Fiber, l.Base, l.Total, l.MaxShell)
	}
	return b.String()
}

// RenderPersonaTable renders the persona table report as fixed-width text.
func RenderPersonaTable(rows []persona.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-6s %-12s %-22s %s\n", "INDEX", "PRIME", "STRUCTURE", "TYPE", "CHARACTER")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-6d %-6d %-12s %-22s %s\n", r.Index, r.Prime, r.Structure, r.Type, r.Character)
	}
	return b.String()
}
