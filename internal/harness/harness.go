// Package harness runs declarative verification scenarios against the
// combinatorial core: YAML files describe operations and expected results,
// the runner executes them, and snapshots can be compared against golden
// files for regression coverage.
package harness

import (
	"fmt"
	"strconv"

	"github.com/orgitcog/froot/internal/hopf"
	"github.com/orgitcog/froot/internal/ion"
	"github.com/orgitcog/froot/internal/matula"
	"github.com/orgitcog/froot/internal/prime"
	"github.com/orgitcog/froot/internal/tree"
)

// CheckResult records one executed check.
type CheckResult struct {
	Op    string
	Input string
	Got   map[string]any
	Pass  bool
	// Detail explains a failure; empty when the check passed.
	Detail string
}

// Result is the outcome of one scenario run.
type Result struct {
	Scenario string
	Passed   bool
	Checks   []CheckResult
}

// Run executes every check in the scenario, in order. Execution errors
// (malformed notation, out-of-range orders) fail the affected check rather
// than aborting the run.
func Run(scenario *Scenario) (*Result, error) {
	result := &Result{Scenario: scenario.Name, Passed: true}
	for i, check := range scenario.Checks {
		cr, err := runCheck(check)
		if err != nil {
			return nil, fmt.Errorf("scenario %q check %d: %w", scenario.Name, i, err)
		}
		if !cr.Pass {
			result.Passed = false
		}
		result.Checks = append(result.Checks, cr)
	}
	return result, nil
}

func runCheck(check Check) (CheckResult, error) {
	switch check.Op {
	case "encode":
		return checkEncode(check), nil
	case "decode":
		return checkDecode(check), nil
	case "order":
		return checkOrder(check), nil
	case "cuts":
		return checkCuts(check), nil
	case "coproduct":
		return checkCoproduct(check), nil
	case "graft":
		return checkGraft(check), nil
	case "layer":
		return checkLayer(check), nil
	case "tower":
		return checkTower(check), nil
	case "renorm":
		return checkRenorm(check), nil
	default:
		return CheckResult{}, fmt.Errorf("unknown op %q", check.Op)
	}
}

func failed(cr CheckResult, format string, args ...any) CheckResult {
	cr.Pass = false
	cr.Detail = fmt.Sprintf(format, args...)
	return cr
}

func expectInt(cr CheckResult, field string, want *int, got int) CheckResult {
	if want != nil && *want != got {
		return failed(cr, "%s: want %d, got %d", field, *want, got)
	}
	return cr
}

func checkEncode(check Check) CheckResult {
	cr := CheckResult{Op: "encode", Input: check.Notation, Pass: true}
	code, err := matula.FromNotation(check.Notation)
	if err != nil {
		return failed(cr, "encode: %v", err)
	}
	cr.Got = map[string]any{"matula": code}
	return expectInt(cr, "matula", check.Expect.Matula, code)
}

func checkDecode(check Check) CheckResult {
	cr := CheckResult{Op: "decode", Input: strconv.Itoa(check.Matula), Pass: true}
	notation := matula.Notation(check.Matula)
	cr.Got = map[string]any{"notation": notation}
	if check.Expect.Notation != nil && *check.Expect.Notation != notation {
		return failed(cr, "notation: want %s, got %s", *check.Expect.Notation, notation)
	}
	return cr
}

func checkOrder(check Check) CheckResult {
	cr := CheckResult{Op: "order", Input: check.Notation, Pass: true}
	t, err := tree.Parse(check.Notation)
	if err != nil {
		return failed(cr, "order: %v", err)
	}
	cr.Got = map[string]any{"order": t.Order()}
	return expectInt(cr, "order", check.Expect.Order, t.Order())
}

func checkCuts(check Check) CheckResult {
	cr := CheckResult{Op: "cuts", Input: check.Notation, Pass: true}
	t, err := tree.Parse(check.Notation)
	if err != nil {
		return failed(cr, "cuts: %v", err)
	}
	count := len(hopf.AdmissibleCuts(t))
	cr.Got = map[string]any{"count": count}
	return expectInt(cr, "count", check.Expect.Count, count)
}

func checkCoproduct(check Check) CheckResult {
	cr := CheckResult{Op: "coproduct", Input: check.Notation, Pass: true}
	t, err := tree.Parse(check.Notation)
	if err != nil {
		return failed(cr, "coproduct: %v", err)
	}
	terms := len(hopf.Coproduct(t))
	cr.Got = map[string]any{"terms": terms}
	return expectInt(cr, "terms", check.Expect.Terms, terms)
}

func checkGraft(check Check) CheckResult {
	cr := CheckResult{Op: "graft", Input: strconv.Itoa(check.Matula), Pass: true}
	code, err := matula.Graft(check.Matula)
	if err != nil {
		return failed(cr, "graft: %v", err)
	}
	cr.Got = map[string]any{"matula": code}
	return expectInt(cr, "matula", check.Expect.Matula, code)
}

func checkLayer(check Check) CheckResult {
	cr := CheckResult{Op: "layer", Input: strconv.Itoa(check.Order), Pass: true}
	layer, err := ion.At(check.Order)
	if err != nil {
		return failed(cr, "layer: %v", err)
	}
	cr.Got = map[string]any{
		"fiber":    layer.Fiber,
		"base":     layer.Base,
		"total":    layer.Total,
		"maxShell": layer.MaxShell,
	}
	cr = expectInt(cr, "fiber", check.Expect.Fiber, layer.Fiber)
	if cr.Pass {
		cr = expectInt(cr, "base", check.Expect.Base, layer.Base)
	}
	if cr.Pass {
		cr = expectInt(cr, "total", check.Expect.Total, layer.Total)
	}
	if cr.Pass {
		cr = expectInt(cr, "maxShell", check.Expect.MaxShell, layer.MaxShell)
	}
	return cr
}

func checkTower(check Check) CheckResult {
	cr := CheckResult{
		Op:    "tower",
		Input: fmt.Sprintf("%d/%d", check.Seed, check.Depth),
		Pass:  true,
	}
	tower, err := prime.Tower(check.Seed, check.Depth)
	if err != nil {
		return failed(cr, "tower: %v", err)
	}
	values := make([]any, len(tower))
	for i, v := range tower {
		values[i] = v
	}
	cr.Got = map[string]any{"values": values}
	if check.Expect.Values != nil {
		if len(check.Expect.Values) != len(tower) {
			return failed(cr, "values: want %d entries, got %d", len(check.Expect.Values), len(tower))
		}
		for i, want := range check.Expect.Values {
			if tower[i] != want {
				return failed(cr, "values[%d]: want %d, got %d", i, want, tower[i])
			}
		}
	}
	return cr
}

// checkRenorm evaluates the antipode of the node-count character over the
// integer algebra, the reference character for verification runs.
func checkRenorm(check Check) CheckResult {
	cr := CheckResult{Op: "renorm", Input: check.Notation, Pass: true}
	t, err := tree.Parse(check.Notation)
	if err != nil {
		return failed(cr, "renorm: %v", err)
	}
	counting := hopf.NewCharacter("n", hopf.IntAlgebra{}, func(tr tree.Tree) int {
		return tr.Order()
	})
	value := hopf.Renormalize(counting, t)
	cr.Got = map[string]any{"value": value}
	return expectInt(cr, "value", check.Expect.Value, value)
}
