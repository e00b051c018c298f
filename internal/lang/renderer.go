// Package lang defines the per-language rendering contract and the registry of
// supported target languages.
package lang

import (
	"github.com/mcncl/json2types/internal/models"
)

// Renderer produces target-language source text for inferred records.
// Implementations are stateless and safe for concurrent use.
type Renderer interface {
	// Name returns the canonical language identifier, e.g. "go".
	Name() string

	// Header opens a record declaration for an already normalized type name.
	Header(typeName string) string

	// Footer closes the record declaration opened by Header.
	Footer(typeName string) string

	// FieldName turns a JSON key into the language's field identifier.
	FieldName(key string) string

	// FormatField renders one complete field declaration line, including any
	// annotation that carries the original JSON key.
	FormatField(typeText, key string) string

	// FormatArrayType wraps an element type in the language's collection type.
	// optional is true when the source array contained a null element.
	FormatArrayType(elem string, optional bool) string

	// PrimitiveTypeName returns the language's name for a primitive kind.
	PrimitiveTypeName(kind models.PrimitiveKind) string

	// TypeName turns a JSON key into a record type name.
	TypeName(key string) string
}

// Preambler is implemented by renderers whose output needs leading lines, such
// as imports, before the first record.
type Preambler interface {
	Preamble() string
}

// Preamble returns the leading lines for r, or "" when it has none.
func Preamble(r Renderer) string {
	if p, ok := r.(Preambler); ok {
		return p.Preamble()
	}
	return ""
}
