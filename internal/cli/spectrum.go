package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orgitcog/froot/internal/ion"
	"github.com/orgitcog/froot/internal/prime"
)

// CountsResult lists rooted-tree counts by order.
type CountsResult struct {
	Max    int   `json:"max"`
	Counts []int `json:"counts"` // counts[i] is the count for order i+1
}

// NewCountsCommand creates the counts command.
func NewCountsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "counts <max>",
		Short: "List rooted-tree counts by order",
		Long: `List the number of unlabeled rooted trees for each order 1 through
max. Counts come from a precomputed table; orders beyond it are a
deliberate scope limit.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCounts(rootOpts, args[0], cmd)
		},
	}
}

func runCounts(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	max, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}
	if max < 1 {
		return commandError(formatter, ErrCodeOutOfRange, fmt.Sprintf("max order must be >= 1, got %d", max))
	}

	result := CountsResult{Max: max, Counts: make([]int, 0, max)}
	for n := 1; n <= max; n++ {
		count, err := ion.TreeCount(n)
		if err != nil {
			return spectrumError(formatter, err)
		}
		result.Counts = append(result.Counts, count)
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	for i, count := range result.Counts {
		fmt.Fprintf(formatter.Writer, "%d: %d\n", i+1, count)
	}
	return nil
}

// LayerResult is one ion layer rendered for output.
type LayerResult struct {
	Order    int `json:"order"`
	Fiber    int `json:"fiber"`
	Base     int `json:"base"`
	Total    int `json:"total"`
	MaxShell int `json:"max_shell"`
}

func layerResult(l ion.Layer) LayerResult {
	return LayerResult{Order: l.Order, Fiber: l.Fiber, Base: l.Base, Total: l.Total, MaxShell: l.MaxShell}
}

// NewIonCommand creates the ion command.
func NewIonCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ion <order>",
		Short: "Show one ion layer record",
		Long: `Show the layer record at one order of the tree-count recursion:
total shapes, the fiber carried from the previous order, the base of
genuinely new shapes, and the prime-tower maximum shell.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIon(rootOpts, args[0], cmd)
		},
	}
}

func runIon(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	n, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}
	layer, err := ion.At(n)
	if err != nil {
		return spectrumError(formatter, err)
	}

	result := layerResult(layer)
	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	fmt.Fprintf(formatter.Writer, "n=%d: total=%d fiber=%d base=%d maxShell=%d\n",
		result.Order, result.Total, result.Fiber, result.Base, result.MaxShell)
	return nil
}

// LayersResult is the layer sequence report payload.
type LayersResult struct {
	Max    int           `json:"max"`
	Layers []LayerResult `json:"layers"`
}

// NewLayersCommand creates the layers command.
func NewLayersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layers <max>",
		Short: "Report ion layers for orders 0 through max",
		Long: `Report the full layer sequence of the tree-count recursion for
orders 0 through max. With --db, the sequence is appended to the ledger.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayers(rootOpts, args[0], cmd)
		},
	}
}

func runLayers(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	max, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}
	seq, err := ion.Sequence(max)
	if err != nil {
		return spectrumError(formatter, err)
	}

	if err := recordLayers(opts, formatter, cmd, seq); err != nil {
		return err
	}

	result := LayersResult{Max: max, Layers: make([]LayerResult, 0, len(seq))}
	for _, l := range seq {
		result.Layers = append(result.Layers, layerResult(l))
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	fmt.Fprint(formatter.Writer, RenderLayerTable(seq))
	return nil
}

func recordLayers(opts *RootOptions, formatter *OutputFormatter, cmd *cobra.Command, seq []ion.Layer) error {
	st, err := openLedger(opts)
	if err != nil {
		return commandError(formatter, ErrCodeLedger, err.Error())
	}
	if st == nil {
		return nil
	}
	defer st.Close()

	ctx := cmd.Context()
	run, err := st.BeginRun(ctx, "layers")
	if err != nil {
		return commandError(formatter, ErrCodeLedger, err.Error())
	}
	for _, layer := range seq {
		if err := st.RecordLayer(ctx, run, layer); err != nil {
			return commandError(formatter, ErrCodeLedger, err.Error())
		}
	}
	formatter.VerboseLog("recorded %d layer(s) in %s", len(seq), opts.Database)
	return nil
}

// TowerResult is the iterated nth-prime sequence from a seed.
type TowerResult struct {
	Seed   int   `json:"seed"`
	Depth  int   `json:"depth"`
	Values []int `json:"values"`
}

// NewTowerCommand creates the tower command.
func NewTowerCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tower <seed> <depth>",
		Short: "Iterate the nth-prime map from a seed",
		Long: `Iterate the nth-prime map depth times starting from seed: each step
grafts the tree with the current Matula code, so the sequence is the
repeated B+ orbit of the seed in Matula coordinates.

Example:
  froot tower 8 5`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTower(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runTower(opts *RootOptions, seedArg, depthArg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	seed, err := strconv.Atoi(seedArg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", seedArg))
	}
	depth, err := strconv.Atoi(depthArg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", depthArg))
	}

	values, err := prime.Tower(seed, depth)
	if err != nil {
		return spectrumError(formatter, err)
	}

	result := TowerResult{Seed: seed, Depth: depth, Values: values}
	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(formatter.Writer, strings.Join(parts, " -> "))
	return nil
}

// spectrumError maps numeric-range errors onto error codes and exit code 2.
func spectrumError(formatter *OutputFormatter, err error) error {
	var (
		rangeErr *ion.RangeError
		orderErr *ion.OrderError
		indexErr *prime.IndexError
		depthErr *prime.DepthError
	)
	switch {
	case errors.As(err, &rangeErr), errors.As(err, &orderErr),
		errors.As(err, &indexErr), errors.As(err, &depthErr):
		return commandError(formatter, ErrCodeOutOfRange, err.Error())
	default:
		return commandError(formatter, ErrCodeGeneric, err.Error())
	}
}
