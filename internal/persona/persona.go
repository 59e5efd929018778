// Package persona classifies prime indices by the compositional structure of
// the index: its Matula tree notation and prime factorization. Each prime
// inherits the character of its index, which the table and grammar reports
// make visible.
package persona

import (
	"fmt"
	"sort"

	"github.com/orgitcog/froot/internal/matula"
	"github.com/orgitcog/froot/internal/prime"
)

// Persona describes the structural character of one index.
type Persona struct {
	Index         int    `json:"index"`
	Structure     string `json:"structure"` // bracket notation of the index's tree
	Character     string `json:"character"` // descriptive classification
	Type          string `json:"type"`      // machine-friendly classification
	Factors       []int  `json:"factors"`
	UniqueFactors []int  `json:"unique_factors"`
}

// Classify returns the persona of index n.
func Classify(n int) Persona {
	if n <= 0 {
		return Persona{Index: n, Structure: "()", Character: "void", Type: "void",
			Factors: []int{}, UniqueFactors: []int{}}
	}
	if n == 1 {
		return Persona{Index: 1, Structure: "()", Character: "unit/identity, the ur-shell",
			Type: "unit", Factors: []int{}, UniqueFactors: []int{}}
	}

	factors := prime.Factorize(n)
	unique := uniqueSorted(factors)

	p := Persona{
		Index:         n,
		Structure:     matula.Notation(n),
		Factors:       factors,
		UniqueFactors: unique,
	}
	p.Character, p.Type = classifyFactors(factors, unique)
	applyOverrides(&p)
	return p
}

// classifyFactors derives the base classification from the factor multiset.
func classifyFactors(factors, unique []int) (character, typ string) {
	switch {
	case len(factors) == 1:
		switch factors[0] {
		case 2:
			return "pure binary, the first recursion", "pure_binary"
		case 3:
			return "pure ternary", "pure_ternary"
		default:
			return fmt.Sprintf("pure %d-adic", factors[0]), fmt.Sprintf("pure_prime_%d", factors[0])
		}
	case len(unique) == 1:
		p := unique[0]
		power := len(factors)
		switch p {
		case 2:
			switch power {
			case 2:
				character = "binary squared, first composite index"
			case 3:
				character = "binary cubed, pure 2^3"
			default:
				character = fmt.Sprintf("binary to power %d", power)
			}
			if power == 2 {
				return character, "squared_binary"
			}
			return character, "power_binary"
		case 3:
			if power == 2 {
				return "ternary squared, 3^2", "squared_ternary"
			}
			return fmt.Sprintf("ternary to power %d", power), "power_ternary"
		default:
			return fmt.Sprintf("%d to power %d", p, power), fmt.Sprintf("power_%d", p)
		}
	default:
		if len(factors) == 2 && contains(unique, 2) && contains(unique, 3) {
			return "first mixed ensemble, 2x3", "mixed_binary_ternary"
		}
		if contains(unique, 2) && contains(unique, 3) {
			return "binary-ternary mix", "mixed_ensemble"
		}
		return fmt.Sprintf("heterogeneous mixing of %v", unique), "mixed_ensemble"
	}
}

// applyOverrides installs the handcrafted descriptions for a few landmark
// indices, keeping the computed type except where noted.
func applyOverrides(p *Persona) {
	switch p.Index {
	case 3:
		p.Character = "nested binary, phi's home"
		p.Type = "pure_binary"
	case 5:
		p.Character = "triple nesting, deep recursion"
	case 6:
		p.Character = "first mixed ensemble, 2x3"
		p.Type = "mixed_binary_ternary"
	case 7:
		p.Character = "prime index with squared-binary echo"
	case 10:
		p.Character = "2x5, binary-fibonacci liaison"
	}
}

func uniqueSorted(factors []int) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, f := range factors {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Ints(out)
	return out
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
