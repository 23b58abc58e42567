package highlight

// Kind is the semantic category of a highlighting token.
//
// The ordinal values are written into the wire encoding, so the order
// below is part of the protocol and must never be renumbered without a
// protocol version bump.
type Kind uint16

const (
	Variable Kind = iota
	LocalVariable
	Parameter
	Function
	Method
	StaticMethod
	Field
	StaticField
	Class
	Enum
	EnumConstant
	Typedef
	DependentType
	DependentName
	Namespace
	TemplateParameter
	Primitive
	Macro
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case LocalVariable:
		return "LocalVariable"
	case Parameter:
		return "Parameter"
	case Function:
		return "Function"
	case Method:
		return "Method"
	case StaticMethod:
		return "StaticMethod"
	case Field:
		return "Field"
	case StaticField:
		return "StaticField"
	case Class:
		return "Class"
	case Enum:
		return "Enum"
	case EnumConstant:
		return "EnumConstant"
	case Typedef:
		return "Typedef"
	case DependentType:
		return "DependentType"
	case DependentName:
		return "DependentName"
	case Namespace:
		return "Namespace"
	case TemplateParameter:
		return "TemplateParameter"
	case Primitive:
		return "Primitive"
	case Macro:
		return "Macro"
	default:
		return "Unknown"
	}
}

// ScopeFor returns the static display-scope identifier for a kind, for
// clients that render by named style rather than by Kind ordinal. Each
// kind maps to exactly one fixed scope string; the table is independent
// of the wire protocol version.
func ScopeFor(k Kind) string {
	switch k {
	case Function:
		return "entity.name.function.cpp"
	case Method:
		return "entity.name.function.method.cpp"
	case StaticMethod:
		return "entity.name.function.method.static.cpp"
	case Variable:
		return "variable.other.cpp"
	case LocalVariable:
		return "variable.other.local.cpp"
	case Parameter:
		return "variable.parameter.cpp"
	case Field:
		return "variable.other.field.cpp"
	case StaticField:
		return "variable.other.field.static.cpp"
	case Class:
		return "entity.name.type.class.cpp"
	case Enum:
		return "entity.name.type.enum.cpp"
	case EnumConstant:
		return "variable.other.enummember.cpp"
	case Typedef:
		return "entity.name.type.typedef.cpp"
	case DependentType:
		return "entity.name.type.dependent.cpp"
	case DependentName:
		return "entity.name.other.dependent.cpp"
	case Namespace:
		return "entity.name.namespace.cpp"
	case TemplateParameter:
		return "entity.name.type.template.cpp"
	case Primitive:
		return "storage.type.primitive.cpp"
	case Macro:
		return "entity.name.function.preprocessor.cpp"
	default:
		return ""
	}
}

// Scopes returns the full kind-to-scope table in ordinal order, one scope
// per kind. Clients query it once and cache it.
func Scopes() [][]string {
	scopes := make([][]string, 0, int(Macro)+1)
	for k := Variable; k <= Macro; k++ {
		scopes = append(scopes, []string{ScopeFor(k)})
	}
	return scopes
}
