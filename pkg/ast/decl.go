/*
Package ast models the resolved syntax/semantic tree the highlighting
pipeline consumes.

The tree is produced by an external resolver (parser + semantic analysis,
out of scope here) with every name already bound, marked ambiguous, or
marked dependent. The shapes below form a closed set:

	File
	  |
	  +-> Node (sealed: one struct per shape)
	         |
	         +-> Decl   resolved declarations, wrapper chains
	         +-> Type   builtin / template-param / tag references
	         +-> Location  spelling position + macro origin

Walkers dispatch on the concrete node type; there is no open-ended
subclassing.
*/
package ast

// DeclKind tags a resolved declaration.
type DeclKind int

const (
	// DeclUnknown is any declaration shape the classifier does not
	// recognize. It classifies to no highlighting kind.
	DeclUnknown DeclKind = iota

	DeclNamespace
	DeclNamespaceAlias
	DeclUsingDirective
	DeclRecord // class, struct or union, including closures
	DeclConstructor
	DeclMethod
	DeclField // non-static data member
	DeclVariable
	DeclParameter
	DeclBinding // structured binding
	DeclFunction
	DeclEnum
	DeclEnumConstant
	DeclTypedefName // typedef or alias declaration
	DeclTemplateTypeParam
	DeclNonTypeTemplateParam
	DeclTemplateTemplateParam

	// DeclTemplate is a transparent wrapper around its templated entity.
	DeclTemplate
	// DeclUsingShadow is a transparent wrapper around the declaration a
	// using-declaration introduces into scope.
	DeclUsingShadow
)

// Storage distinguishes the storage scope of a DeclVariable.
type Storage int

const (
	// StorageOther covers globals and namespace-scope variables.
	StorageOther Storage = iota
	// StorageStaticMember marks a static data member.
	StorageStaticMember
	// StorageLocal marks a function-local variable.
	StorageLocal
)

// Decl is a resolved declaration. Only the fields relevant to the
// declaration's Kind are populated.
type Decl struct {
	Kind DeclKind

	// Name is the declaration's spelled name. Empty for unwritten names
	// such as anonymous classes; constructors and using-directives carry
	// no identifier either but still count as highlightable.
	Name string

	// Static is set on static member functions.
	Static bool

	// Storage applies to DeclVariable only.
	Storage Storage

	// Closure marks records that are lambda/anonymous function objects.
	Closure bool

	// Underlying is the aliased type of a DeclTypedefName.
	Underlying *Type

	// Target is the declaration a DeclUsingShadow resolves to.
	Target *Decl

	// Templated is the entity a DeclTemplate wraps.
	Templated *Decl
}

// TypeKind tags a resolved type reference.
type TypeKind int

const (
	TypeOther TypeKind = iota
	TypeBuiltin
	TypeTemplateParam
	TypeTag // class, struct, union or enum
)

// Type is a resolved type. TemplateParam and Tag types link back to their
// declarations; builtins have none.
type Type struct {
	Kind TypeKind
	Decl *Decl
}
