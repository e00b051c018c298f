package lang

import (
	"regexp"
	"strconv"

	"github.com/mcncl/json2types/internal/models"
	"github.com/mcncl/json2types/internal/naming"
)

var tsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var tsPrimitives = primitiveTable{
	models.PrimitiveAny:    "unknown",
	models.PrimitiveBool:   "boolean",
	models.PrimitiveInt:    "number",
	models.PrimitiveFloat:  "number",
	models.PrimitiveString: "string",
}

// TypeScript renders exported interfaces. Property names keep the JSON key and
// are quoted when the key is not a valid identifier. Nullable array elements
// become a union with null.
type TypeScript struct{}

func (TypeScript) Name() string { return "typescript" }

func (TypeScript) Header(typeName string) string {
	return "export interface " + typeName + " {\n"
}

func (TypeScript) Footer(string) string { return "}" }

func (TypeScript) FieldName(key string) string {
	if tsIdentifier.MatchString(key) {
		return key
	}
	return strconv.Quote(key)
}

func (ts TypeScript) FormatField(typeText, key string) string {
	return "\t" + ts.FieldName(key) + ": " + typeText + ";\n"
}

func (TypeScript) FormatArrayType(elem string, optional bool) string {
	if optional {
		return "(" + elem + " | null)[]"
	}
	return elem + "[]"
}

func (TypeScript) PrimitiveTypeName(kind models.PrimitiveKind) string { return tsPrimitives.name(kind) }

func (TypeScript) TypeName(key string) string { return naming.TypeName(key) }
