package lsp

import (
	"context"

	"github.com/walteh/semhl/pkg/ast"
)

// Resolver produces the resolved tree for one document snapshot. The
// parser and semantic analysis behind it are the host's concern; the
// server only requires that the returned file carries the traversal
// roots and the precomputed macro ranges for the document.
type Resolver interface {
	Resolve(ctx context.Context, uri string, version int32, content string) (*ast.File, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, uri string, version int32, content string) (*ast.File, error)

func (f ResolverFunc) Resolve(ctx context.Context, uri string, version int32, content string) (*ast.File, error) {
	return f(ctx, uri, version, content)
}
