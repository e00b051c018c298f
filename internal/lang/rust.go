package lang

import (
	"github.com/mcncl/json2types/internal/models"
	"github.com/mcncl/json2types/internal/naming"
)

var rustPrimitives = primitiveTable{
	models.PrimitiveAny:    "serde_json::Value",
	models.PrimitiveBool:   "bool",
	models.PrimitiveInt:    "i64",
	models.PrimitiveFloat:  "f64",
	models.PrimitiveString: "String",
}

// Rust renders public structs whose fields keep the JSON key verbatim.
// Nullable array elements are wrapped in Option.
type Rust struct{}

func (Rust) Name() string { return "rust" }

func (Rust) Header(typeName string) string {
	return "pub struct " + typeName + " {\n"
}

func (Rust) Footer(string) string { return "}" }

func (Rust) FieldName(key string) string { return key }

func (r Rust) FormatField(typeText, key string) string {
	return "\tpub " + r.FieldName(key) + ": " + typeText + ",\n"
}

func (Rust) FormatArrayType(elem string, optional bool) string {
	if optional {
		elem = "Option<" + elem + ">"
	}
	return "Vec<" + elem + ">"
}

func (Rust) PrimitiveTypeName(kind models.PrimitiveKind) string { return rustPrimitives.name(kind) }

func (Rust) TypeName(key string) string { return naming.TypeName(key) }
