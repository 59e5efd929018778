package harness

import (
	"fmt"

	"github.com/orgitcog/froot/internal/canon"
)

// Snapshot renders a result as canonical JSON, suitable for golden-file
// comparison. Failure details are included only for failing checks so
// passing snapshots stay stable.
func Snapshot(result *Result) ([]byte, error) {
	checks := make([]any, len(result.Checks))
	for i, cr := range result.Checks {
		entry := map[string]any{
			"op":    cr.Op,
			"input": cr.Input,
			"got":   cr.Got,
			"pass":  cr.Pass,
		}
		if cr.Detail != "" {
			entry["detail"] = cr.Detail
		}
		checks[i] = entry
	}
	data, err := canon.Marshal(map[string]any{
		"scenario": result.Scenario,
		"checks":   checks,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", result.Scenario, err)
	}
	return data, nil
}
