/*
Package highlight derives semantic highlighting tokens from a resolved
tree and ships them to editor clients:

	ast.File
	   |
	 walk + classify          (collect.go, classify.go)
	   |
	 canonical token set      (sort, dedupe, conflict strip)
	   |
	 per-line diff            (diff.go)
	   |
	 binary wire payload      (encode.go)

Every stage is a pure transformation over immutable inputs; the caller
owns the previous-snapshot state the diff runs against.
*/
package highlight

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/walteh/semhl/pkg/ast"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

// collector walks one resolved file and accumulates raw tokens.
type collector struct {
	ctx  context.Context
	file *ast.File
	toks []Token
	errs error
}

// canHighlightDecl reports whether the declaration's name is written in
// the source. Constructors and using-directives carry no identifier but
// still count as writable; anonymous names do not.
func canHighlightDecl(d *ast.Decl) bool {
	if d == nil {
		return false
	}
	if d.Kind == ast.DeclConstructor || d.Kind == ast.DeclUsingDirective {
		return true
	}
	return d.Name != ""
}

func (c *collector) visit(n ast.Node) {
	switch n := n.(type) {
	case *ast.DeclNode:
		if canHighlightDecl(n.Decl) {
			c.addDecl(n.Loc, n.Decl)
		}
	case *ast.RefNode:
		if n.Name != "" {
			c.addDecl(n.Loc, n.Target)
		}
	case *ast.MemberNode:
		if n.Name != "" {
			c.addDecl(n.Loc, n.Target)
		}
	case *ast.OverloadNode:
		if n.Name != "" {
			k, ok := kindForCandidateDecls(n.Candidates)
			if !ok {
				k = DependentName
			}
			c.add(n.Loc, k)
		}
	case *ast.DependentNameNode:
		if n.Name != "" {
			c.add(n.Loc, DependentName)
		}
	case *ast.DependentTypeNode:
		c.add(n.Loc, DependentType)
	case *ast.UsingNode:
		if k, ok := kindForCandidateDecls(n.Shadows); ok {
			c.add(n.Loc, k)
		}
	case *ast.NamespaceAliasNode:
		// The target namespace of an alias cannot be reached any other
		// way.
		c.addDecl(n.TargetLoc, n.Aliased)
	case *ast.TypedefTypeNode:
		c.addDecl(n.Loc, n.Decl)
	case *ast.TemplateSpecNode:
		if n.Template != nil {
			c.addDecl(n.Loc, n.Template)
		}
	case *ast.TagTypeNode:
		// The defining occurrence is highlighted by its DeclNode.
		if !n.Definition {
			if k, ok := kindForType(n.Type); ok {
				c.add(n.Loc, k)
			}
		}
	case *ast.DecltypeNode:
		if k, ok := kindForType(n.Type); ok {
			c.add(n.Loc, k)
		}
	case *ast.TemplateParamTypeNode:
		c.add(n.Loc, TemplateParameter)
	case *ast.ScopeSpecifierNode:
		if n.Target != nil &&
			(n.Target.Kind == ast.DeclNamespace || n.Target.Kind == ast.DeclNamespaceAlias) {
			c.add(n.Loc, Namespace)
		}
	case *ast.CtorInitNode:
		if n.Member != nil {
			c.addDecl(n.Loc, n.Member)
		}
	case *ast.PlaceholderTypeNode:
		if k, ok := kindForType(n.Deduced); ok {
			c.add(n.Loc, k)
		}
	}

	for _, kid := range n.Children() {
		c.visit(kid)
	}
}

func (c *collector) addDecl(loc ast.Location, d *ast.Decl) {
	if k, ok := kindForDecl(d); ok {
		c.add(loc, k)
	}
}

func (c *collector) add(loc ast.Location, k Kind) {
	if !loc.Valid() {
		return
	}
	// Only macro *argument* expansions are highlighted token by token;
	// macro bodies are covered by the file's macro ranges instead.
	if loc.FromMacro && !loc.MacroArg {
		return
	}
	if loc.File != c.file.Name {
		return
	}
	if loc.Range == nil {
		// A resolvable location should always have a range; if it does
		// not, something upstream is very wrong. Report and keep going.
		zerolog.Ctx(c.ctx).Error().
			Str("file", c.file.Name).
			Stringer("kind", k).
			Msg("semantic token location has no resolvable range")
		c.errs = multierr.Append(c.errs,
			errors.Errorf("token %s in %s: location has no resolvable range", k, c.file.Name))
		return
	}
	c.toks = append(c.toks, Token{Kind: k, R: *loc.Range})
}

// Tokens runs one traversal of the resolved file and returns its
// canonical token set. The returned error aggregates internal
// range-resolution inconsistencies; the token set is valid either way,
// failures only mean fewer tokens emitted.
func Tokens(ctx context.Context, file *ast.File) ([]Token, error) {
	c := &collector{ctx: ctx, file: file, toks: make([]Token, 0)}
	for _, n := range file.Nodes {
		c.visit(n)
	}
	// Macro expansions are not discovered by the traversal; merge the
	// resolver's precomputed ranges before canonicalization so they are
	// subject to the same conflict rules.
	for _, r := range file.MacroRanges {
		c.toks = append(c.toks, Token{Kind: Macro, R: r})
	}
	return Canonicalize(c.toks), c.errs
}

// Canonicalize sorts a raw token stream into canonical order, removes
// exact duplicates, and drops every run of two or more tokens sharing an
// identical range. Ambiguous same-range classification means "no safe
// classification", not "pick one". Canonicalize is idempotent.
func Canonicalize(toks []Token) []Token {
	sorted := make([]Token, len(toks))
	copy(sorted, toks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	// Exact duplicates arise naturally, e.g. initializer-list traversal
	// visiting the same name twice.
	deduped := sorted[:0]
	for _, t := range sorted {
		if len(deduped) == 0 || deduped[len(deduped)-1] != t {
			deduped = append(deduped, t)
		}
	}

	out := make([]Token, 0, len(deduped))
	for i := 0; i < len(deduped); {
		j := i + 1
		for j < len(deduped) && deduped[j].R == deduped[i].R {
			j++
		}
		if j-i == 1 {
			out = append(out, deduped[i])
		}
		i = j
	}
	return out
}
