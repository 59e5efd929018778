package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orgitcog/froot/internal/hopf"
	"github.com/orgitcog/froot/internal/tree"
)

// CutResult is one admissible cut rendered for output.
type CutResult struct {
	Pruned string `json:"pruned"`
	Trunk  string `json:"trunk"`
}

// CutsResult lists all admissible cuts of a tree.
type CutsResult struct {
	Notation string      `json:"notation"`
	Count    int         `json:"count"`
	Cuts     []CutResult `json:"cuts"`
}

// NewCutsCommand creates the cuts command.
func NewCutsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cuts <notation>",
		Short: "Enumerate the admissible cuts of a tree",
		Long: `Enumerate every admissible cut of a rooted tree in deterministic
order: for each non-empty subset of root children (bitmask order), the cut
severing those edges, followed immediately by all deeper cuts of the
remaining trunk.

Each cut yields a pruned forest and a trunk; their orders always sum to
the order of the tree.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCuts(rootOpts, args[0], cmd)
		},
	}
}

func runCuts(opts *RootOptions, notation string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	t, err := tree.Parse(notation)
	if err != nil {
		return codecError(formatter, err)
	}

	cuts := hopf.AdmissibleCuts(t)
	result := CutsResult{Notation: t.Notation(), Count: len(cuts), Cuts: make([]CutResult, 0, len(cuts))}
	for _, c := range cuts {
		result.Cuts = append(result.Cuts, CutResult{
			Pruned: forestLabel(c.Pruned),
			Trunk:  c.Trunk.Notation(),
		})
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	for i, c := range result.Cuts {
		fmt.Fprintf(formatter.Writer, "%d: %s | %s\n", i+1, c.Pruned, c.Trunk)
	}
	fmt.Fprintf(formatter.Writer, "%d admissible cut(s)\n", result.Count)
	return nil
}

// TermResult is one coproduct term rendered for output.
type TermResult struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// CoproductResult lists the coproduct terms of a tree.
type CoproductResult struct {
	Notation string       `json:"notation"`
	Terms    []TermResult `json:"terms"`
}

// NewCoproductCommand creates the coproduct command.
func NewCoproductCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "coproduct <notation>",
		Short: "Expand the Connes-Kreimer coproduct of a tree",
		Long: `Expand the coproduct of a rooted tree as a list of forest-tree terms:
the boundary terms t(x)1 and 1(x)t first, then one term per admissible cut
in enumeration order. The unit 1 stands for the empty forest.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoproduct(rootOpts, args[0], cmd)
		},
	}
}

func runCoproduct(opts *RootOptions, notation string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	t, err := tree.Parse(notation)
	if err != nil {
		return codecError(formatter, err)
	}

	terms := hopf.Coproduct(t)
	result := CoproductResult{Notation: t.Notation(), Terms: make([]TermResult, 0, len(terms))}
	for _, term := range terms {
		result.Terms = append(result.Terms, TermResult{
			Left:  forestLabel(term.Left),
			Right: term.Right.Notation(),
		})
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	for _, term := range result.Terms {
		fmt.Fprintf(formatter.Writer, "%s (x) %s\n", term.Left, term.Right)
	}
	fmt.Fprintf(formatter.Writer, "%d term(s)\n", len(result.Terms))
	return nil
}

// RenormResult reports the antipode value of the node-count character.
type RenormResult struct {
	Notation  string  `json:"notation"`
	Character string  `json:"character"`
	Value     float64 `json:"value"`
}

// NewRenormCommand creates the renorm command.
func NewRenormCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "renorm <notation>",
		Short: "Evaluate the antipode counterterm of the node-count character",
		Long: `Evaluate S(t) for the node-count character over float64:
S(t) = -phi(t) - sum over admissible cuts of S(pruned) * phi(trunk),
with S(leaf) = -phi(leaf). The result is the renormalization counterterm
of the character at the given tree.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenorm(rootOpts, args[0], cmd)
		},
	}
}

func runRenorm(opts *RootOptions, notation string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	t, err := tree.Parse(notation)
	if err != nil {
		return codecError(formatter, err)
	}

	counting := hopf.NewCharacter("node-count", hopf.Float64Algebra{}, func(tr tree.Tree) float64 {
		return float64(tr.Order())
	})
	value := hopf.Renormalize(counting, t)

	result := RenormResult{Notation: t.Notation(), Character: counting.Name(), Value: value}
	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	fmt.Fprintf(formatter.Writer, "S[%s](%s) = %g\n", result.Character, result.Notation, result.Value)
	return nil
}

// forestLabel renders a forest, using the unit 1 for the empty forest.
func forestLabel(f tree.Forest) string {
	if len(f) == 0 {
		return "1"
	}
	return f.Notation()
}
