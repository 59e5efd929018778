package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a declarative verification script: a named sequence of checks
// run against the combinatorial core.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario verifies.
	Description string `yaml:"description,omitempty"`

	// Checks run in order. Every check must pass for the scenario to pass.
	Checks []Check `yaml:"checks"`
}

// Check is one operation plus its expected outcome. Which input fields are
// meaningful depends on Op:
//
//	encode    notation -> expect.matula
//	decode    matula   -> expect.notation
//	order     notation -> expect.order
//	cuts      notation -> expect.count
//	coproduct notation -> expect.terms
//	graft     matula   -> expect.matula
//	layer     order    -> expect.{fiber,base,total,maxShell}
//	tower     seed, depth -> expect.values
//	renorm    notation -> expect.value (node-count character over ints)
type Check struct {
	Op       string `yaml:"op"`
	Notation string `yaml:"notation,omitempty"`
	Matula   int    `yaml:"matula,omitempty"`
	Order    int    `yaml:"order,omitempty"`
	Seed     int    `yaml:"seed,omitempty"`
	Depth    int    `yaml:"depth,omitempty"`
	Expect   Expect `yaml:"expect"`
}

// Expect holds the expected values for a check. Only fields relevant to the
// check's op are consulted; pointer fields distinguish "absent" from zero.
type Expect struct {
	Matula   *int    `yaml:"matula,omitempty"`
	Notation *string `yaml:"notation,omitempty"`
	Order    *int    `yaml:"order,omitempty"`
	Count    *int    `yaml:"count,omitempty"`
	Terms    *int    `yaml:"terms,omitempty"`
	Fiber    *int    `yaml:"fiber,omitempty"`
	Base     *int    `yaml:"base,omitempty"`
	Total    *int    `yaml:"total,omitempty"`
	MaxShell *int    `yaml:"maxShell,omitempty"`
	Value    *int    `yaml:"value,omitempty"`
	Values   []int   `yaml:"values,omitempty"`
}

// LoadScenario reads a scenario from a YAML file. Unknown fields are
// rejected so typos in scenario files fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes scenario YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("parse scenario: missing name")
	}
	if len(s.Checks) == 0 {
		return nil, fmt.Errorf("parse scenario %q: no checks", s.Name)
	}
	for i, c := range s.Checks {
		if c.Op == "" {
			return nil, fmt.Errorf("parse scenario %q: check %d missing op", s.Name, i)
		}
	}
	return &s, nil
}
