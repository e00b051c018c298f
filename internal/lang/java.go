package lang

import (
	"github.com/mcncl/json2types/internal/models"
	"github.com/mcncl/json2types/internal/naming"
)

// Boxed names so that primitives can appear as List type arguments.
var javaPrimitives = primitiveTable{
	models.PrimitiveAny:    "Object",
	models.PrimitiveBool:   "Boolean",
	models.PrimitiveInt:    "Long",
	models.PrimitiveFloat:  "Double",
	models.PrimitiveString: "String",
}

// Java renders public classes with public camelCase fields. Element types are
// already nullable references, so the optional flag is ignored.
type Java struct{}

func (Java) Name() string { return "java" }

func (Java) Header(typeName string) string {
	return "public class " + typeName + " {\n"
}

func (Java) Footer(string) string { return "}" }

func (Java) FieldName(key string) string { return naming.CamelCase(key) }

func (j Java) FormatField(typeText, key string) string {
	return "\tpublic " + typeText + " " + j.FieldName(key) + ";\n"
}

func (Java) FormatArrayType(elem string, _ bool) string {
	return "List<" + elem + ">"
}

func (Java) PrimitiveTypeName(kind models.PrimitiveKind) string { return javaPrimitives.name(kind) }

func (Java) TypeName(key string) string { return naming.TypeName(key) }
