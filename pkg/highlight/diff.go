package highlight

import (
	"math"
)

// takeLine returns the run of tokens starting at index from whose range
// starts on line, along with the index one past the run.
func takeLine(toks []Token, from, line int) ([]Token, int) {
	end := from
	for end < len(toks) && toks[end].R.Start.Line == line {
		end++
	}
	return toks[from:end], end
}

// DiffLines compares two canonical token sets grouped by start line and
// returns the lines whose token slices differ, carrying the new tokens
// for each. Passing an empty old set reports every populated line of the
// new set. Both inputs must already be in canonical order.
//
// Known approximation: a token spanning several lines is keyed only by
// its start line. If the only genuine change sits on a later line that is
// fully covered by such a token's continuation, that trailing line is not
// reported. Splitting multi-line tokens per covered line would need the
// file buffer to measure line lengths, so the behavior is kept as is.
func DiffLines(newToks, oldToks []Token) []Line {
	var diffed []Line

	newIdx, oldIdx := 0, 0
	var newLine, oldLine []Token

	nextLine := func() int {
		next := math.MaxInt
		if newIdx < len(newToks) {
			next = newToks[newIdx].R.Start.Line
		}
		if oldIdx < len(oldToks) && oldToks[oldIdx].R.Start.Line < next {
			next = oldToks[oldIdx].R.Start.Line
		}
		return next
	}

	for line := 0; newIdx < len(newToks) || oldIdx < len(oldToks); line = nextLine() {
		newLine, newIdx = takeLine(newToks, newIdx, line)
		oldLine, oldIdx = takeLine(oldToks, oldIdx, line)
		if !sameTokens(newLine, oldLine) {
			diffed = append(diffed, Line{Number: line, Tokens: newLine})
		}
	}

	return diffed
}
