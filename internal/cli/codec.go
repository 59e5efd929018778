package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orgitcog/froot/internal/matula"
	"github.com/orgitcog/froot/internal/tree"
)

// EncodingResult is the shared payload for codec commands.
type EncodingResult struct {
	Notation string `json:"notation"`
	Matula   int    `json:"matula"`
	Order    int    `json:"order"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <notation>",
		Short: "Encode a bracket-notation tree as its Matula integer",
		Long: `Encode a rooted tree, written in balanced bracket notation, as its
Matula-Goebel integer: a leaf encodes to 1, any other tree to the product
of the nth primes of its children's codes.

Examples:
  froot encode "(()()())"
  froot encode "((()))" --format json
  froot encode "(())" --db results.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, args[0], cmd)
		},
	}
}

func runEncode(opts *RootOptions, notation string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	t, err := tree.Parse(notation)
	if err != nil {
		return codecError(formatter, err)
	}
	code, err := matula.Encode(t)
	if err != nil {
		return codecError(formatter, err)
	}

	result := EncodingResult{Notation: t.Notation(), Matula: code, Order: t.Order()}
	if err := ledgerAppend(cmd.Context(), opts, formatter, "encode", result); err != nil {
		return err
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	fmt.Fprintf(formatter.Writer, "%s -> %d (order %d)\n", result.Notation, result.Matula, result.Order)
	return nil
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <matula>",
		Short: "Decode a Matula integer back into bracket notation",
		Long: `Decode a Matula-Goebel integer into a rooted tree: 1 decodes to the
leaf, any larger integer to the tree whose children are the decoded prime
indices of its ascending factorization.

Decoding then re-encoding always reproduces the integer; child order of
the original tree is not preserved, only its code.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], cmd)
		},
	}
}

func runDecode(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	code, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}
	if code < 1 {
		return commandError(formatter, ErrCodeOutOfRange, fmt.Sprintf("matula code must be >= 1, got %d", code))
	}

	t := matula.Decode(code)
	result := EncodingResult{Notation: t.Notation(), Matula: code, Order: t.Order()}
	if err := ledgerAppend(cmd.Context(), opts, formatter, "decode", result); err != nil {
		return err
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	fmt.Fprintf(formatter.Writer, "%d -> %s (order %d)\n", result.Matula, result.Notation, result.Order)
	return nil
}

// TreeResult extends the codec payload with shape details.
type TreeResult struct {
	EncodingResult
	Children int  `json:"children"`
	Leaf     bool `json:"leaf"`
}

// NewTreeCommand creates the tree command.
func NewTreeCommand(rootOpts *RootOptions) *cobra.Command {
	var code int

	cmd := &cobra.Command{
		Use:   "tree [notation]",
		Short: "Show a tree's notation, code, order and shape",
		Long: `Show one rooted tree from either of its two representations: bracket
notation (positional argument) or Matula integer (--matula).

Examples:
  froot tree "(()(()))"
  froot tree --matula 6`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(rootOpts, args, code, cmd)
		},
	}

	cmd.Flags().IntVar(&code, "matula", 0, "look up the tree by Matula code instead of notation")
	return cmd
}

func runTree(opts *RootOptions, args []string, code int, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	var t tree.Tree
	switch {
	case len(args) == 1 && code != 0:
		return commandError(formatter, ErrCodeGeneric, "give either a notation argument or --matula, not both")
	case len(args) == 1:
		parsed, err := tree.Parse(args[0])
		if err != nil {
			return codecError(formatter, err)
		}
		t = parsed
	case code != 0:
		if code < 1 {
			return commandError(formatter, ErrCodeOutOfRange, fmt.Sprintf("matula code must be >= 1, got %d", code))
		}
		t = matula.Decode(code)
	default:
		return commandError(formatter, ErrCodeGeneric, "a notation argument or --matula is required")
	}

	encoded, err := matula.Encode(t)
	if err != nil {
		return codecError(formatter, err)
	}

	result := TreeResult{
		EncodingResult: EncodingResult{Notation: t.Notation(), Matula: encoded, Order: t.Order()},
		Children:       t.NumChildren(),
		Leaf:           t.IsLeaf(),
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	fmt.Fprintf(formatter.Writer, "notation: %s\n", result.Notation)
	fmt.Fprintf(formatter.Writer, "matula:   %d\n", result.Matula)
	fmt.Fprintf(formatter.Writer, "order:    %d\n", result.Order)
	fmt.Fprintf(formatter.Writer, "children: %d\n", result.Children)
	return nil
}

// NewGraftCommand creates the graft command.
func NewGraftCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "graft <matula>",
		Short: "Apply the grafting operator B+ in Matula coordinates",
		Long: `Root the tree under a new node. In Matula coordinates B+ is the nth
prime: grafting the tree with code m yields the tree with code prime(m).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraft(rootOpts, args[0], cmd)
		},
	}
}

// GraftResult reports one application of B+.
type GraftResult struct {
	Matula   int    `json:"matula"`
	Grafted  int    `json:"grafted"`
	Notation string `json:"notation"`
}

func runGraft(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	code, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}
	grafted, err := matula.Graft(code)
	if err != nil {
		return codecError(formatter, err)
	}

	result := GraftResult{Matula: code, Grafted: grafted, Notation: matula.Notation(grafted)}
	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	fmt.Fprintf(formatter.Writer, "B+(%d) = %d  %s\n", result.Matula, result.Grafted, result.Notation)
	return nil
}

// ledgerAppend records a codec result when --db is set.
func ledgerAppend(ctx context.Context, opts *RootOptions, formatter *OutputFormatter, command string, result EncodingResult) error {
	st, err := openLedger(opts)
	if err != nil {
		return commandError(formatter, ErrCodeLedger, err.Error())
	}
	if st == nil {
		return nil
	}
	defer st.Close()

	if err := recordEncoding(ctx, st, command, result.Matula, result.Notation, result.Order); err != nil {
		return commandError(formatter, ErrCodeLedger, err.Error())
	}
	formatter.VerboseLog("recorded %d in %s", result.Matula, opts.Database)
	return nil
}

// codecError maps domain errors onto error codes and exit code 2.
func codecError(formatter *OutputFormatter, err error) error {
	var (
		syntaxErr   *tree.SyntaxError
		overflowErr *matula.OverflowError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return commandError(formatter, ErrCodeBadNotation, err.Error())
	case errors.As(err, &overflowErr):
		return commandError(formatter, ErrCodeOverflow, err.Error())
	default:
		return commandError(formatter, ErrCodeGeneric, err.Error())
	}
}
