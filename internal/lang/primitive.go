package lang

import (
	"strings"

	"github.com/mcncl/json2types/internal/models"
)

// PrimitiveOf maps a scalar JSON value to its primitive kind. Numbers are floats
// when their literal has a fraction or an exponent and integers otherwise,
// whatever their magnitude. Arrays and objects map to PrimitiveAny.
func PrimitiveOf(v models.Value) models.PrimitiveKind {
	switch v.Kind() {
	case models.KindBool:
		return models.PrimitiveBool
	case models.KindString:
		return models.PrimitiveString
	case models.KindNumber:
		if strings.ContainsAny(v.Text(), ".eE") {
			return models.PrimitiveFloat
		}
		return models.PrimitiveInt
	default:
		return models.PrimitiveAny
	}
}

// PrimitiveName returns r's type name for the scalar value v.
func PrimitiveName(r Renderer, v models.Value) string {
	return r.PrimitiveTypeName(PrimitiveOf(v))
}

// primitiveTable holds one language's primitive type names.
type primitiveTable map[models.PrimitiveKind]string

func (t primitiveTable) name(kind models.PrimitiveKind) string {
	if name, ok := t[kind]; ok {
		return name
	}
	return t[models.PrimitiveAny]
}
