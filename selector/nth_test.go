package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNthFormula(t *testing.T) {
	tests := []struct {
		input string
		want  NthFormula
		ok    bool
	}{
		{"odd", NthFormula{2, 1}, true},
		{"even", NthFormula{2, 0}, true},
		{"EVEN", NthFormula{2, 0}, true},
		{"3", NthFormula{0, 3}, true},
		{"+3", NthFormula{0, 3}, true},
		{"-3", NthFormula{0, -3}, true},
		{"n", NthFormula{1, 0}, true},
		{"-n", NthFormula{-1, 0}, true},
		{"+n", NthFormula{1, 0}, true},
		{"2n", NthFormula{2, 0}, true},
		{"2n+1", NthFormula{2, 1}, true},
		{"2n-1", NthFormula{2, -1}, true},
		{"-n+3", NthFormula{-1, 3}, true},
		{"+3n-2", NthFormula{3, -2}, true},
		{"10n+9", NthFormula{10, 9}, true},
		{"", NthFormula{}, false},
		{"+", NthFormula{}, false},
		{"n+", NthFormula{}, false},
		{"nn", NthFormula{}, false},
		{"2m+1", NthFormula{}, false},
		{"2n1", NthFormula{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseNthFormula(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNthFormulaMatches(t *testing.T) {
	collect := func(f NthFormula, upTo int) []int {
		var out []int
		for i := 1; i <= upTo; i++ {
			if f.Matches(i) {
				out = append(out, i)
			}
		}
		return out
	}

	assert.Equal(t, []int{1, 3, 5}, collect(NthFormula{2, 1}, 6), "odd")
	assert.Equal(t, []int{2, 4, 6}, collect(NthFormula{2, 0}, 6), "even")
	assert.Equal(t, []int{3}, collect(NthFormula{0, 3}, 6), "bare index")
	assert.Equal(t, []int{1, 2, 3}, collect(NthFormula{-1, 3}, 6), "-n+3")
	assert.Equal(t, []int{3, 6}, collect(NthFormula{3, 0}, 6), "3n")
	assert.Nil(t, collect(NthFormula{0, -1}, 6), "negative index matches nothing")
	assert.Nil(t, collect(NthFormula{0, 0}, 6), "zero matches nothing")
}
