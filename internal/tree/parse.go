package tree

import "fmt"

// SyntaxError reports a malformed bracket string, with the byte offset of the
// first offending position.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bracket syntax error at offset %d: %s", e.Offset, e.Msg)
}

// Parse reads a tree from bracket notation. The input must be exactly one
// balanced bracket group: "()" is a leaf, "(...)" wraps the concatenated
// child notations with no separators.
//
// Malformed input (unbalanced brackets, stray characters, trailing garbage)
// returns a *SyntaxError.
func Parse(s string) (Tree, error) {
	if s == "" {
		return Tree{}, &SyntaxError{Offset: 0, Msg: "empty input"}
	}

	p := &parser{input: s}
	t, err := p.parseTree()
	if err != nil {
		return Tree{}, err
	}
	if p.pos != len(s) {
		return Tree{}, &SyntaxError{Offset: p.pos, Msg: "trailing input after tree"}
	}
	return t, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseTree() (Tree, error) {
	if p.pos >= len(p.input) {
		return Tree{}, &SyntaxError{Offset: p.pos, Msg: "unexpected end of input"}
	}
	if p.input[p.pos] != '(' {
		return Tree{}, &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf("expected '(', found %q", p.input[p.pos])}
	}
	p.pos++

	var children []Tree
	for {
		if p.pos >= len(p.input) {
			return Tree{}, &SyntaxError{Offset: p.pos, Msg: "unclosed '('"}
		}
		switch p.input[p.pos] {
		case ')':
			p.pos++
			return New(children...), nil
		case '(':
			child, err := p.parseTree()
			if err != nil {
				return Tree{}, err
			}
			children = append(children, child)
		default:
			return Tree{}, &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf("unexpected character %q", p.input[p.pos])}
		}
	}
}
