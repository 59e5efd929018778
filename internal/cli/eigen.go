package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orgitcog/froot/internal/eigen"
	"github.com/orgitcog/froot/internal/prime"
)

// EigenResult pairs an ensemble with an optional projection.
type EigenResult struct {
	eigen.Ensemble
	Projection []int    `json:"projection,omitempty"`
	Density    *float64 `json:"density,omitempty"`
}

// NewEigenCommand creates the eigen command.
func NewEigenCommand(rootOpts *RootOptions) *cobra.Command {
	var project int

	cmd := &cobra.Command{
		Use:   "eigen <index>",
		Short: "Show the prime eigenvalue ensemble of an index",
		Long: `Show the eigenvalue ensemble of an index: its prime, the divisors
and prime factorization of the index, and its partition count. With
--project, also list the multiples of the prime up to the limit and
their density.

Examples:
  froot eigen 4
  froot eigen 3 --project 50`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEigen(rootOpts, args[0], project, cmd)
		},
	}

	cmd.Flags().IntVar(&project, "project", 0, "projection limit (0 disables)")
	return cmd
}

func runEigen(opts *RootOptions, arg string, project int, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	n, err := strconv.Atoi(arg)
	if err != nil {
		return commandError(formatter, ErrCodeBadInteger, fmt.Sprintf("not an integer: %q", arg))
	}
	ensemble, err := eigen.Eigenvalue(n)
	if err != nil {
		var indexErr *prime.IndexError
		if errors.As(err, &indexErr) {
			return commandError(formatter, ErrCodeOutOfRange, err.Error())
		}
		return commandError(formatter, ErrCodeGeneric, err.Error())
	}

	result := EigenResult{Ensemble: ensemble}
	if project > 0 {
		result.Projection = ensemble.Project(project)
		density := ensemble.ProjectionDensity(project)
		result.Density = &density
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	fmt.Fprintf(formatter.Writer, "index:      %d\n", ensemble.Index)
	fmt.Fprintf(formatter.Writer, "prime:      %d\n", ensemble.Prime)
	fmt.Fprintf(formatter.Writer, "divisors:   %v\n", ensemble.Divisors)
	fmt.Fprintf(formatter.Writer, "factors:    %v\n", ensemble.Factors)
	fmt.Fprintf(formatter.Writer, "partitions: %d\n", ensemble.PartitionCount)
	if project > 0 {
		fmt.Fprintf(formatter.Writer, "projection: %v (density %.4f up to %d)\n",
			result.Projection, *result.Density, project)
	}
	return nil
}
