package models

// PrimitiveKind is the language independent category of a scalar JSON value.
type PrimitiveKind int

const (
	// PrimitiveAny is used for null and for arrays with no non-null element.
	PrimitiveAny PrimitiveKind = iota
	PrimitiveBool
	PrimitiveInt
	PrimitiveFloat
	PrimitiveString
)

func (p PrimitiveKind) String() string {
	switch p {
	case PrimitiveBool:
		return "bool"
	case PrimitiveInt:
		return "int"
	case PrimitiveFloat:
		return "float"
	case PrimitiveString:
		return "string"
	default:
		return "any"
	}
}

// TypeKind tags the variant held by an InferredType.
type TypeKind int

const (
	TypePrimitive TypeKind = iota
	TypeArray
	TypeNamed
)

// InferredType is the type of a field: a primitive, an array of some element type,
// or a reference to a record defined elsewhere in the result.
type InferredType struct {
	Kind      TypeKind
	Primitive PrimitiveKind
	// Elem and Optional are set for arrays. Optional means at least one element
	// of the source array was null.
	Elem     *InferredType
	Optional bool
	// Name is the record type name for TypeNamed.
	Name string
}

func PrimitiveType(kind PrimitiveKind) InferredType {
	return InferredType{Kind: TypePrimitive, Primitive: kind}
}

func ArrayOf(elem InferredType, optional bool) InferredType {
	return InferredType{Kind: TypeArray, Elem: &elem, Optional: optional}
}

func NamedType(name string) InferredType {
	return InferredType{Kind: TypeNamed, Name: name}
}

// FieldDef is one field of a record, keyed by the original JSON key.
type FieldDef struct {
	Key  string
	Type InferredType
}

// RecordDef is a named record inferred from one JSON object.
// Fields are in the source object's key order.
type RecordDef struct {
	Name   string
	Fields []FieldDef
}
