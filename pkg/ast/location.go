package ast

import (
	"github.com/walteh/semhl/pkg/position"
)

// Location is the spelling position of a single name occurrence, as
// resolved by the upstream source manager. Positions that originate in a
// macro expansion have already been rewritten to their spelling location;
// the macro flags record where the occurrence came from so the walker can
// keep macro-argument expansions and drop macro-body ones.
type Location struct {
	// File names the file the spelling position lands in. Empty means the
	// location could not be resolved at all.
	File string

	// Range is the token range at the spelling position. A valid location
	// with a nil Range means range computation failed, which the walker
	// reports as an internal inconsistency.
	Range *position.Range

	// FromMacro is set when the occurrence was produced by any macro
	// expansion.
	FromMacro bool

	// MacroArg is set when the occurrence is an expansion of a macro
	// *argument* (DEF_X(arg)). Only these macro locations are highlighted
	// token by token.
	MacroArg bool
}

// Valid reports whether the location resolved to any file at all.
func (l Location) Valid() bool {
	return l.File != ""
}

// File is one resolved primary file: the traversal roots plus the macro
// expansion ranges the resolver collected out of band.
type File struct {
	// Name identifies the primary file. Tokens whose spelling location
	// lands elsewhere are discarded.
	Name string

	// Nodes are the top-level nodes of the resolved tree.
	Nodes []Node

	// MacroRanges are the precomputed macro expansion ranges for the
	// primary file. They are not discovered by traversal.
	MacroRanges []position.Range
}
