package ast

// Node is the sealed interface over every tree shape that can carry a
// nameable occurrence. The set is fixed; walkers switch exhaustively on
// the concrete types below.
type Node interface {
	Children() []Node
	isNode()
}

// Branch carries child nodes for shapes that have them. Embedding it is
// what makes a struct a Node.
type Branch struct {
	Kids []Node
}

func (b *Branch) Children() []Node { return b.Kids }
func (b *Branch) isNode()          {}

// DeclNode is a declaration occurrence: the point where a name is
// declared, highlighted via the declaration itself.
type DeclNode struct {
	Branch
	Decl *Decl
	Loc  Location
}

// RefNode is a resolved name reference (a use of a declared name).
type RefNode struct {
	Branch
	Name   string
	Target *Decl
	Loc    Location
}

// MemberNode is a resolved member access (obj.field, obj.method).
type MemberNode struct {
	Branch
	Name   string
	Target *Decl
	Loc    Location
}

// OverloadNode is a reference that resolved to a candidate set rather
// than a single declaration (overload sets, shadowed names).
type OverloadNode struct {
	Branch
	Name       string
	Candidates []*Decl
	Loc        Location
}

// DependentNameNode is a template-dependent name reference with no
// candidate set at all.
type DependentNameNode struct {
	Branch
	Name string
	Loc  Location
}

// DependentTypeNode is a template-dependent type reference.
type DependentTypeNode struct {
	Branch
	Loc Location
}

// UsingNode is a using-declaration, carrying the shadow declarations it
// introduces.
type UsingNode struct {
	Branch
	Shadows []*Decl
	Loc     Location
}

// NamespaceAliasNode records the *target* name of a namespace alias
// declaration; the alias's own name is a separate DeclNode. The target
// namespace cannot be reached any other way.
type NamespaceAliasNode struct {
	Branch
	Aliased   *Decl
	TargetLoc Location
}

// TypedefTypeNode is a reference to a typedef-named type.
type TypedefTypeNode struct {
	Branch
	Decl *Decl
	Loc  Location
}

// TemplateSpecNode is a template specialization type reference
// (vector<int>), linking the named template declaration.
type TemplateSpecNode struct {
	Branch
	Template *Decl
	Loc      Location
}

// TagTypeNode is a tag type reference (class/struct/union/enum used as a
// type). Definition marks the defining occurrence, which is highlighted
// by its DeclNode instead.
type TagTypeNode struct {
	Branch
	Type       *Type
	Definition bool
	Loc        Location
}

// DecltypeNode is a decltype(...) type reference, highlighted with the
// kind of the resolved underlying type.
type DecltypeNode struct {
	Branch
	Type *Type
	Loc  Location
}

// TemplateParamTypeNode is a use of a template type parameter as a type.
type TemplateParamTypeNode struct {
	Branch
	Loc Location
}

// ScopeSpecifierNode is one component of a nested-name specifier
// (outer:: in outer::inner). Target is nil when the component names a
// type rather than a declaration.
type ScopeSpecifierNode struct {
	Branch
	Target *Decl
	Loc    Location
}

// CtorInitNode is one entry of a constructor member-initializer list,
// highlighted at the initializer location with the member's kind. Member
// is nil for base-class initializers.
type CtorInitNode struct {
	Branch
	Member *Decl
	Loc    Location
}

// PlaceholderTypeNode is an implicitly deduced placeholder type
// specifier ('auto'), highlighted with the kind of the deduced type.
type PlaceholderTypeNode struct {
	Branch
	Deduced *Type
	Loc     Location
}

// Nodes is a convenience for building child lists by hand.
func Nodes(kids ...Node) Branch {
	return Branch{Kids: kids}
}
