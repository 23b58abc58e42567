package highlight

import (
	"github.com/walteh/semhl/pkg/ast"
)

// maxUnwrapDepth bounds wrapper resolution. Well-formed input never
// chains more than a couple of wrappers; the bound keeps a malformed
// cyclic chain from hanging the pipeline.
const maxUnwrapDepth = 16

// resolveWrappers follows transparent wrappers to the declaration that
// actually gets classified: a using-shadow resolves to its target, a
// template declaration to its templated entity.
func resolveWrappers(d *ast.Decl) *ast.Decl {
	for i := 0; i < maxUnwrapDepth && d != nil; i++ {
		switch d.Kind {
		case ast.DeclUsingShadow:
			if d.Target == nil {
				return d
			}
			d = d.Target
		case ast.DeclTemplate:
			if d.Templated == nil {
				return d
			}
			d = d.Templated
		default:
			return d
		}
	}
	return d
}

// kindForDecl maps a resolved declaration to its highlighting kind.
// Unrecognized declarations yield ok=false and are silently excluded;
// that is never an error.
func kindForDecl(d *ast.Decl) (Kind, bool) {
	if d == nil {
		return 0, false
	}
	d = resolveWrappers(d)

	switch d.Kind {
	case ast.DeclTypedefName:
		// Typedefs highlight as their underlying type when it resolves,
		// with a generic Typedef kind as the fallback.
		if k, ok := kindForType(d.Underlying); ok {
			return k, true
		}
		return Typedef, true
	case ast.DeclRecord:
		// Closures have no user-visible name to highlight.
		if d.Closure {
			return 0, false
		}
		return Class, true
	case ast.DeclConstructor:
		return Class, true
	case ast.DeclMethod:
		if d.Static {
			return StaticMethod, true
		}
		return Method, true
	case ast.DeclField:
		return Field, true
	case ast.DeclEnum:
		return Enum, true
	case ast.DeclEnumConstant:
		return EnumConstant, true
	case ast.DeclParameter:
		return Parameter, true
	case ast.DeclVariable:
		switch d.Storage {
		case ast.StorageStaticMember:
			return StaticField, true
		case ast.StorageLocal:
			return LocalVariable, true
		default:
			return Variable, true
		}
	case ast.DeclBinding:
		return Variable, true
	case ast.DeclFunction:
		return Function, true
	case ast.DeclNamespace, ast.DeclNamespaceAlias, ast.DeclUsingDirective:
		return Namespace, true
	case ast.DeclTemplateTypeParam, ast.DeclNonTypeTemplateParam, ast.DeclTemplateTemplateParam:
		return TemplateParameter, true
	default:
		return 0, false
	}
}

// kindForType maps a resolved type to a highlighting kind. Builtins are
// special: they have no declaration to classify through.
func kindForType(t *ast.Type) (Kind, bool) {
	if t == nil {
		return 0, false
	}
	switch t.Kind {
	case ast.TypeBuiltin:
		return Primitive, true
	case ast.TypeTemplateParam, ast.TypeTag:
		return kindForDecl(t.Decl)
	default:
		return 0, false
	}
}

// kindForCandidateDecls classifies a candidate set (overloads, shadowed
// names). It returns a kind only when every candidate classifies to the
// identical kind; any disagreement, or any unclassifiable candidate,
// makes the whole set unclassifiable.
func kindForCandidateDecls(decls []*ast.Decl) (Kind, bool) {
	var result Kind
	found := false
	for _, d := range decls {
		k, ok := kindForDecl(d)
		if !ok || (found && k != result) {
			return 0, false
		}
		result = k
		found = true
	}
	return result, found
}
