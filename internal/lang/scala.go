package lang

import (
	"strings"

	"github.com/mcncl/json2types/internal/models"
	"github.com/mcncl/json2types/internal/naming"
)

const scalaTabWidth = 8

var scalaPrimitives = primitiveTable{
	models.PrimitiveAny:    "Any",
	models.PrimitiveBool:   "Boolean",
	models.PrimitiveInt:    "Long",
	models.PrimitiveFloat:  "Double",
	models.PrimitiveString: "String",
}

// Scala renders case classes with camelCase parameters. Nullable array
// elements are wrapped in Option.
type Scala struct{}

func (Scala) Name() string { return "scala" }

func (Scala) Header(typeName string) string {
	return "case class " + typeName + "(\n"
}

// Footer indents the closing parenthesis by one tab per eight characters of the
// rendered header.
func (s Scala) Footer(typeName string) string {
	if typeName == "" {
		typeName = naming.Placeholder
	}
	tabs := len(s.Header(typeName)) / scalaTabWidth
	return strings.Repeat("\t", tabs) + ")"
}

func (Scala) FieldName(key string) string { return naming.CamelCase(key) }

func (s Scala) FormatField(typeText, key string) string {
	return "\t\t" + s.FieldName(key) + ": " + typeText + ",\n"
}

func (Scala) FormatArrayType(elem string, optional bool) string {
	if optional {
		elem = "Option[" + elem + "]"
	}
	return "Seq[" + elem + "]"
}

func (Scala) PrimitiveTypeName(kind models.PrimitiveKind) string { return scalaPrimitives.name(kind) }

func (Scala) TypeName(key string) string { return naming.TypeName(key) }
