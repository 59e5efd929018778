package persona

import (
	"fmt"
	"strings"

	"github.com/orgitcog/froot/internal/prime"
)

// Row pairs an index's persona with its prime eigenvalue.
type Row struct {
	Index     int    `json:"index"`
	Prime     int    `json:"prime"`
	Structure string `json:"structure"`
	Character string `json:"character"`
	Type      string `json:"type"`
}

// Table builds the persona table for indices 1 through maxIndex: how each
// prime inherits the structure of its index.
func Table(maxIndex int) ([]Row, error) {
	if maxIndex < 1 {
		return nil, &prime.IndexError{N: maxIndex}
	}

	rows := make([]Row, 0, maxIndex)
	for n := 1; n <= maxIndex; n++ {
		p, err := prime.NthPrime(n)
		if err != nil {
			return nil, err
		}
		persona := Classify(n)
		rows = append(rows, Row{
			Index:     n,
			Prime:     p,
			Structure: persona.Structure,
			Character: persona.Character,
			Type:      persona.Type,
		})
	}
	return rows, nil
}

// Entry is one classified member of a grammar analysis.
type Entry struct {
	Index   int    `json:"index"`
	Prime   int    `json:"prime"`
	Persona string `json:"persona"`
}

// GrammarAnalysis summarizes what structural vocabulary a prime-bounded
// alphabet can invoke.
type GrammarAnalysis struct {
	PrimeBound     int      `json:"prime_bound"`
	AlphabetSize   int      `json:"alphabet_size"`
	Primes         []int    `json:"primes"`
	Capabilities   []string `json:"capabilities"`
	PureBinary     []Entry  `json:"pure_binary"`
	Squared        []Entry  `json:"squared"`
	Mixed          []Entry  `json:"mixed"`
	TernaryBased   []Entry  `json:"ternary_based"`
	Expressiveness int      `json:"expressiveness"`
}

// Grammar analyzes the alphabet of all primes up to primeBound.
func Grammar(primeBound int) (GrammarAnalysis, error) {
	analysis := GrammarAnalysis{
		PrimeBound:   primeBound,
		Primes:       []int{},
		PureBinary:   []Entry{},
		Squared:      []Entry{},
		Mixed:        []Entry{},
		TernaryBased: []Entry{},
	}

	for n := 1; ; n++ {
		p, err := prime.NthPrime(n)
		if err != nil {
			return GrammarAnalysis{}, err
		}
		if p > primeBound {
			break
		}
		analysis.Primes = append(analysis.Primes, p)

		persona := Classify(n)
		entry := Entry{Index: n, Prime: p, Persona: persona.Character}
		if strings.Contains(persona.Type, "binary") {
			analysis.PureBinary = append(analysis.PureBinary, entry)
		}
		if strings.Contains(persona.Type, "squared") || strings.Contains(persona.Type, "power") {
			analysis.Squared = append(analysis.Squared, entry)
		}
		if strings.Contains(persona.Type, "mixed") {
			analysis.Mixed = append(analysis.Mixed, entry)
		}
		if strings.Contains(persona.Type, "ternary") {
			analysis.TernaryBased = append(analysis.TernaryBased, entry)
		}
	}
	analysis.AlphabetSize = len(analysis.Primes)

	analysis.Capabilities = append(analysis.Capabilities,
		fmt.Sprintf("Binary depths: %d levels", len(analysis.PureBinary)))
	if len(analysis.Squared) > 0 {
		analysis.Capabilities = append(analysis.Capabilities,
			fmt.Sprintf("Squared structures: %d types", len(analysis.Squared)))
	}
	if len(analysis.Mixed) > 0 {
		analysis.Capabilities = append(analysis.Capabilities,
			fmt.Sprintf("Mixed ensembles: %d compositions", len(analysis.Mixed)))
		if hasIndex(analysis.Mixed, 6) {
			analysis.Capabilities = append(analysis.Capabilities,
				"Can mix binary and ternary (2x3 ensemble)")
		}
	}
	if len(analysis.TernaryBased) > 0 {
		analysis.Capabilities = append(analysis.Capabilities,
			fmt.Sprintf("Ternary operations: %d forms", len(analysis.TernaryBased)))
		if hasIndex(analysis.TernaryBased, 9) {
			analysis.Capabilities = append(analysis.Capabilities,
				"Can invoke squared-ternary (3^2)")
		}
	}
	analysis.Expressiveness = len(analysis.Capabilities)

	return analysis, nil
}

func hasIndex(entries []Entry, index int) bool {
	for _, e := range entries {
		if e.Index == index {
			return true
		}
	}
	return false
}
