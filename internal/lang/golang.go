package lang

import (
	"fmt"

	"github.com/mcncl/json2types/internal/models"
	"github.com/mcncl/json2types/internal/naming"
)

var goPrimitives = primitiveTable{
	models.PrimitiveAny:    "any",
	models.PrimitiveBool:   "bool",
	models.PrimitiveInt:    "int64",
	models.PrimitiveFloat:  "float64",
	models.PrimitiveString: "string",
}

// Go renders structs with exported fields and json tags. Nullable array
// elements become pointers.
type Go struct{}

func (Go) Name() string { return "go" }

func (Go) Header(typeName string) string {
	return "type " + typeName + " struct {\n"
}

func (Go) Footer(string) string { return "}" }

func (Go) FieldName(key string) string { return naming.TypeName(key) }

// FormatField does not guard against an empty JSON key, which yields a field
// with no name.
func (g Go) FormatField(typeText, key string) string {
	return fmt.Sprintf("\t%s\t%s\t\t`json:\"%s\"`\n", g.FieldName(key), typeText, key)
}

func (Go) FormatArrayType(elem string, optional bool) string {
	if optional {
		return "[]*" + elem
	}
	return "[]" + elem
}

func (Go) PrimitiveTypeName(kind models.PrimitiveKind) string { return goPrimitives.name(kind) }

func (Go) TypeName(key string) string { return naming.TypeName(key) }
