package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orgitcog/froot/internal/persona"
	"github.com/orgitcog/froot/internal/prime"
)

// NewPersonaCommand creates the persona command.
func NewPersonaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "persona <index>",
		Short: "Classify one prime index by its compositional structure",
		Long: `Classify a prime index by the structure of the index itself: its
Matula tree notation and its prime factorization. The nth prime inherits
the character of n.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersona(rootOpts, args[0], cmd)
		},
	}
}

func runPersona(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	n, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}

	p := persona.Classify(n)
	if opts.Format == "json" {
		return formatter.JSON(p)
	}
	fmt.Fprintf(formatter.Writer, "index:     %d\n", p.Index)
	fmt.Fprintf(formatter.Writer, "structure: %s\n", p.Structure)
	fmt.Fprintf(formatter.Writer, "type:      %s\n", p.Type)
	fmt.Fprintf(formatter.Writer, "character: %s\n", p.Character)
	if len(p.Factors) > 0 {
		fmt.Fprintf(formatter.Writer, "factors:   %v\n", p.Factors)
	}
	return nil
}

// NewPersonaTableCommand creates the persona-table command.
func NewPersonaTableCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "persona-table <max>",
		Short: "Tabulate personas for indices 1 through max",
		Long: `Tabulate the persona of every index from 1 through max alongside the
prime each index selects.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonaTable(rootOpts, args[0], cmd)
		},
	}
}

func runPersonaTable(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	max, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}
	rows, err := persona.Table(max)
	if err != nil {
		return personaError(formatter, err)
	}

	if opts.Format == "json" {
		return formatter.JSON(rows)
	}
	fmt.Fprint(formatter.Writer, RenderPersonaTable(rows))
	return nil
}

// NewGrammarCommand creates the grammar command.
func NewGrammarCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "grammar <bound>",
		Short: "Analyze the structural grammar of a prime-bounded alphabet",
		Long: `Analyze which structural capabilities the alphabet of all primes up
to the bound can invoke: binary depths, squared structures, mixed
ensembles, and ternary forms.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrammar(rootOpts, args[0], cmd)
		},
	}
}

func runGrammar(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	bound, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}
	analysis, err := persona.Grammar(bound)
	if err != nil {
		return personaError(formatter, err)
	}

	if opts.Format == "json" {
		return formatter.JSON(analysis)
	}
	fmt.Fprintf(formatter.Writer, "alphabet: %v (%d primes <= %d)\n",
		analysis.Primes, analysis.AlphabetSize, analysis.PrimeBound)
	for _, capability := range analysis.Capabilities {
		fmt.Fprintf(formatter.Writer, "- %s\n", capability)
	}
	fmt.Fprintf(formatter.Writer, "expressiveness: %d\n", analysis.Expressiveness)
	return nil
}

// personaError maps classification-range errors onto exit code 2.
func personaError(formatter *OutputFormatter, err error) error {
	var indexErr *prime.IndexError
	if errors.As(err, &indexErr) {
		return commandError(formatter, ErrCodeOutOfRange, err.Error())
	}
	return commandError(formatter, ErrCodeGeneric, err.Error())
}
