package position

import (
	"fmt"
)

// Place is a single point in a document, in zero-based editor coordinates.
// Character counts text positions in the file's native units, not bytes.
type Place struct {
	Line      int
	Character int
}

func (p Place) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Before reports whether p is strictly before o in document order.
func (p Place) Before(o Place) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// Compare returns -1, 0 or +1 ordering p against o.
func (p Place) Compare(o Place) int {
	switch {
	case p.Before(o):
		return -1
	case o.Before(p):
		return 1
	default:
		return 0
	}
}

// Range is a half-open span [Start, End) in a single document.
type Range struct {
	Start Place
	End   Place
}

func NewRange(startLine, startChar, endLine, endChar int) Range {
	return Range{
		Start: Place{Line: startLine, Character: startChar},
		End:   Place{Line: endLine, Character: endChar},
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Compare orders ranges by start position, then end position. This is the
// primary component of the canonical token order used for sorting,
// deduplication and diffing.
func (r Range) Compare(o Range) int {
	if c := r.Start.Compare(o.Start); c != 0 {
		return c
	}
	return r.End.Compare(o.End)
}
