package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"github.com/spf13/cobra"

	"github.com/orgitcog/froot/internal/harness"
)

// SuiteError reports a failure loading a CUE verification suite.
type SuiteError struct {
	Code    string
	Message string
}

func (e *SuiteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <suite-dir>",
		Short: "Run a CUE verification suite",
		Long: `Run a verification suite written in CUE against the engine. A suite
directory holds .cue files declaring a suite name and a set of checks:

  suite: name: "core"
  check: corolla: {
      op: "encode"
      notation: "(()()())"
      expect: matula: 8
  }

Checks use the same operations as the YAML harness (encode, decode,
order, cuts, coproduct, graft, layer, tower, renorm).

Exit codes:
  0 - All checks passed
  1 - One or more checks failed
  2 - Command error (missing directory, malformed suite)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, args[0], cmd)
		},
	}
}

func runVerify(opts *RootOptions, suiteDir string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	scenario, err := LoadSuite(suiteDir)
	if err != nil {
		var suiteErr *SuiteError
		if errors.As(err, &suiteErr) {
			return commandError(formatter, suiteErr.Code, suiteErr.Message)
		}
		return commandError(formatter, ErrCodeGeneric, err.Error())
	}

	formatter.VerboseLog("suite %q: %d check(s)", scenario.Name, len(scenario.Checks))

	result, err := harness.Run(scenario)
	if err != nil {
		return commandError(formatter, ErrCodeGeneric, err.Error())
	}

	failures := 0
	for _, c := range result.Checks {
		if !c.Pass {
			failures++
		}
	}

	if opts.Format == "json" {
		payload := verifyPayload(result)
		var encodeErr error
		if result.Passed {
			encodeErr = formatter.JSON(payload)
		} else {
			encodeErr = formatter.JSONError(payload, ErrCodeGeneric,
				fmt.Sprintf("%d check(s) failed", failures))
		}
		if encodeErr != nil {
			return encodeErr
		}
	} else {
		renderVerifyText(formatter, result)
	}

	if !result.Passed {
		return NewExitError(ExitFailure, fmt.Sprintf("suite %q: %d check(s) failed", result.Scenario, failures))
	}
	return nil
}

// VerifyCheck is one executed check in the verify payload.
type VerifyCheck struct {
	Op     string         `json:"op"`
	Input  string         `json:"input"`
	Got    map[string]any `json:"got"`
	Pass   bool           `json:"pass"`
	Detail string         `json:"detail,omitempty"`
}

// VerifyResult is the verify command payload.
type VerifyResult struct {
	Suite  string        `json:"suite"`
	Passed bool          `json:"passed"`
	Checks []VerifyCheck `json:"checks"`
}

func verifyPayload(result *harness.Result) VerifyResult {
	out := VerifyResult{Suite: result.Scenario, Passed: result.Passed}
	for _, c := range result.Checks {
		out.Checks = append(out.Checks, VerifyCheck{
			Op: c.Op, Input: c.Input, Got: c.Got, Pass: c.Pass, Detail: c.Detail,
		})
	}
	return out
}

func renderVerifyText(formatter *OutputFormatter, result *harness.Result) {
	for _, c := range result.Checks {
		mark := "ok"
		if !c.Pass {
			mark = "FAIL"
		}
		fmt.Fprintf(formatter.Writer, "%-4s %s %s\n", mark, c.Op, c.Input)
		if !c.Pass && c.Detail != "" {
			fmt.Fprintf(formatter.Writer, "     %s\n", c.Detail)
		}
	}
	if result.Passed {
		fmt.Fprintf(formatter.Writer, "suite %q passed (%d checks)\n", result.Scenario, len(result.Checks))
	} else {
		fmt.Fprintf(formatter.Writer, "suite %q FAILED\n", result.Scenario)
	}
}

// LoadSuite loads a CUE verification suite from a directory and lowers it to
// a harness scenario. Check labels only fix the evaluation order; the checks
// themselves are the harness check structure.
func LoadSuite(dir string) (*harness.Scenario, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &SuiteError{Code: ErrCodeNotFound, Message: fmt.Sprintf("suite directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &SuiteError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing suite directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &SuiteError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	scenario := &harness.Scenario{}

	nameVal := value.LookupPath(cue.ParsePath("suite.name"))
	if !nameVal.Exists() {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: "suite.name is required"}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("suite.name: %v", err)}
	}
	scenario.Name = name

	checksVal := value.LookupPath(cue.ParsePath("check"))
	if !checksVal.Exists() {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: "no checks declared"}
	}
	iter, err := checksVal.Fields()
	if err != nil {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("iterating checks: %v", err)}
	}
	for iter.Next() {
		var check harness.Check
		if err := iter.Value().Decode(&check); err != nil {
			return nil, &SuiteError{
				Code:    ErrCodeLoadFailed,
				Message: fmt.Sprintf("check %q: %v", iter.Label(), err),
			}
		}
		if check.Op == "" {
			return nil, &SuiteError{
				Code:    ErrCodeLoadFailed,
				Message: fmt.Sprintf("check %q: missing op", iter.Label()),
			}
		}
		scenario.Checks = append(scenario.Checks, check)
	}
	if len(scenario.Checks) == 0 {
		return nil, &SuiteError{Code: ErrCodeLoadFailed, Message: "no checks declared"}
	}

	return scenario, nil
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
