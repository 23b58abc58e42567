package highlight

import (
	"fmt"

	"github.com/walteh/semhl/pkg/position"
)

// Token is one classified name occurrence.
type Token struct {
	Kind Kind
	R    position.Range
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.Kind, t.R)
}

// Compare implements the canonical token order: range first (start, then
// end), kind as tie-break. Sorting, deduplication and diffing all use
// this order.
func (t Token) Compare(o Token) int {
	if c := t.R.Compare(o.R); c != 0 {
		return c
	}
	switch {
	case t.Kind < o.Kind:
		return -1
	case t.Kind > o.Kind:
		return 1
	default:
		return 0
	}
}

// Line groups the tokens whose range starts on one line. Lines are
// derived from a canonical token set on demand, never stored on their
// own.
type Line struct {
	Number int
	Tokens []Token
}

// sameTokens compares two line slices by content, not merely by count.
func sameTokens(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
