package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// NthFormula is the An+B argument of the :nth-* pseudo-classes. Sibling
// indices are 1-based; the formula matches index i when i = A*n + B for
// some integer n >= 0.
type NthFormula struct {
	A int
	B int
}

// Matches reports whether the 1-based index satisfies the formula.
func (f NthFormula) Matches(index int) bool {
	if f.A == 0 {
		return index == f.B
	}
	d := index - f.B
	return d%f.A == 0 && d/f.A >= 0
}

func (f NthFormula) String() string {
	switch {
	case f.A == 0:
		return strconv.Itoa(f.B)
	case f.B == 0:
		return fmt.Sprintf("%dn", f.A)
	case f.B < 0:
		return fmt.Sprintf("%dn%d", f.A, f.B)
	default:
		return fmt.Sprintf("%dn+%d", f.A, f.B)
	}
}

// parseNthFormula parses the An+B micro-grammar: an optional signed
// coefficient with `n`, an optional signed offset, or the keywords
// `odd`/`even`, or a bare integer. Whitespace has already been stripped.
func parseNthFormula(s string) (NthFormula, bool) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	switch s {
	case "":
		return NthFormula{}, false
	case "odd":
		return NthFormula{A: 2, B: 1}, true
	case "even":
		return NthFormula{A: 2, B: 0}, true
	}

	i := strings.IndexByte(s, 'n')
	if i < 0 {
		b, ok := parseSignedInt(s)
		if !ok {
			return NthFormula{}, false
		}
		return NthFormula{A: 0, B: b}, true
	}

	a, ok := parseCoefficient(s[:i])
	if !ok {
		return NthFormula{}, false
	}
	rest := s[i+1:]
	if rest == "" {
		return NthFormula{A: a, B: 0}, true
	}
	if rest[0] != '+' && rest[0] != '-' {
		return NthFormula{}, false
	}
	b, ok := parseSignedInt(rest)
	if !ok {
		return NthFormula{}, false
	}
	return NthFormula{A: a, B: b}, true
}

// parseCoefficient parses the A part in front of `n`: empty means 1,
// a bare sign means +1/-1.
func parseCoefficient(s string) (int, bool) {
	switch s {
	case "", "+":
		return 1, true
	case "-":
		return -1, true
	}
	return parseSignedInt(s)
}

func parseSignedInt(s string) (int, bool) {
	if s == "" || s == "+" || s == "-" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
