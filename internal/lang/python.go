package lang

import (
	"strconv"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/json2types/internal/models"
	"github.com/mcncl/json2types/internal/naming"
)

var pythonPrimitives = primitiveTable{
	models.PrimitiveAny:    "Any",
	models.PrimitiveBool:   "bool",
	models.PrimitiveInt:    "int",
	models.PrimitiveFloat:  "float",
	models.PrimitiveString: "str",
}

// Python renders pydantic models with snake_case attributes. A renamed attribute
// carries the JSON key as its alias. Nullable array elements use Optional.
type Python struct{}

func (Python) Name() string { return "python" }

// Preamble postpones annotation evaluation so the root model can reference
// models printed below it.
func (Python) Preamble() string {
	return "from __future__ import annotations\n\n" +
		"from typing import Any, Optional\n\n" +
		"from pydantic import BaseModel, ConfigDict, Field\n"
}

// Header also emits the model config so that a class with no fields still has a
// body and aliased fields can be populated by attribute name.
func (Python) Header(typeName string) string {
	return "class " + typeName + "(BaseModel):\n" +
		"    model_config = ConfigDict(populate_by_name=True)\n"
}

func (Python) Footer(string) string { return "" }

func (Python) FieldName(key string) string { return strcase.ToSnake(key) }

// FormatField does not guard against an empty key; "" renders as "    : T".
func (p Python) FormatField(typeText, key string) string {
	name := p.FieldName(key)
	if name == key {
		return "    " + name + ": " + typeText + "\n"
	}
	return "    " + name + ": " + typeText + " = Field(alias=" + strconv.Quote(key) + ")\n"
}

func (Python) FormatArrayType(elem string, optional bool) string {
	if optional {
		elem = "Optional[" + elem + "]"
	}
	return "list[" + elem + "]"
}

func (Python) PrimitiveTypeName(kind models.PrimitiveKind) string { return pythonPrimitives.name(kind) }

func (Python) TypeName(key string) string { return naming.TypeName(key) }
