// Package infer walks a parsed JSON document and derives the record types needed
// to describe it in a target language.
package infer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mcncl/json2types/internal/lang"
	"github.com/mcncl/json2types/internal/models"
	"github.com/mcncl/json2types/internal/naming"
)

// Engine infers records from JSON values and renders them with a single
// language renderer. An Engine holds no per-call state and may be reused.
type Engine struct {
	renderer lang.Renderer
	rootName string
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRootName overrides the name used for the root record and as the key hint
// for a top-level array.
func WithRootName(name string) Option {
	return func(e *Engine) {
		if strings.TrimSpace(name) != "" {
			e.rootName = name
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine rendering with r. A nil renderer selects the
// default language.
func NewEngine(r lang.Renderer, opts ...Option) *Engine {
	if r == nil {
		r = lang.Default()
	}
	e := &Engine{
		renderer: r,
		rootName: naming.Placeholder,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Renderer returns the renderer the engine was built with.
func (e *Engine) Renderer() lang.Renderer { return e.renderer }

// Infer returns the records describing root in discovery order. For an object
// root the root record is the last element. Scalar roots and arrays without
// object elements produce no records.
func (e *Engine) Infer(root models.Value) []models.RecordDef {
	switch root.Kind() {
	case models.KindObject:
		return e.inferRecord(e.renderer.TypeName(e.rootName), root)
	case models.KindArray:
		var acc []models.RecordDef
		_ = e.inferArray(e.rootName, root, &acc)
		return acc
	default:
		e.logger.Debug("scalar root produces no records", zap.Stringer("kind", root.Kind()))
		return nil
	}
}

// inferRecord returns the records for obj and everything nested in it. Nested
// records come first and the record for obj itself is last.
func (e *Engine) inferRecord(name string, obj models.Value) []models.RecordDef {
	var out []models.RecordDef
	record := models.RecordDef{Name: name, Fields: make([]models.FieldDef, 0, obj.Len())}

	for _, m := range obj.Members() {
		var t models.InferredType
		switch m.Value.Kind() {
		case models.KindObject:
			nested := e.renderer.TypeName(m.Key)
			out = append(out, e.inferRecord(nested, m.Value)...)
			t = models.NamedType(nested)
		case models.KindArray:
			t = e.inferArray(m.Key, m.Value, &out)
		default:
			t = models.PrimitiveType(lang.PrimitiveOf(m.Value))
		}
		record.Fields = append(record.Fields, models.FieldDef{Key: m.Key, Type: t})
	}

	e.logger.Debug("inferred record",
		zap.String("name", record.Name),
		zap.Int("fields", len(record.Fields)),
	)
	return append(out, record)
}

// inferArray returns the type of arr and appends records discovered in its
// first non-null element to acc. Only that element is inspected.
func (e *Engine) inferArray(key string, arr models.Value, acc *[]models.RecordDef) models.InferredType {
	optional := false
	var first models.Value
	found := false
	for _, el := range arr.Elements() {
		if el.IsNull() {
			optional = true
			continue
		}
		if !found {
			first, found = el, true
		}
	}

	if !found {
		return models.ArrayOf(models.PrimitiveType(models.PrimitiveAny), optional)
	}

	switch first.Kind() {
	case models.KindArray:
		return models.ArrayOf(e.inferArray(key, first, acc), optional)
	case models.KindObject:
		if key == "" {
			key = naming.Placeholder
		}
		name := naming.FromArrayKey(key, e.renderer.TypeName)
		*acc = append(*acc, e.inferRecord(name, first)...)
		return models.ArrayOf(models.NamedType(name), optional)
	default:
		return models.ArrayOf(models.PrimitiveType(lang.PrimitiveOf(first)), optional)
	}
}

// TypeText renders t in the engine's language.
func (e *Engine) TypeText(t models.InferredType) string {
	switch t.Kind {
	case models.TypeArray:
		elem := models.PrimitiveType(models.PrimitiveAny)
		if t.Elem != nil {
			elem = *t.Elem
		}
		return e.renderer.FormatArrayType(e.TypeText(elem), t.Optional)
	case models.TypeNamed:
		return t.Name
	default:
		return e.renderer.PrimitiveTypeName(t.Primitive)
	}
}

// Render produces the declaration text of one record.
func (e *Engine) Render(rec models.RecordDef) string {
	var b strings.Builder
	b.WriteString(e.renderer.Header(rec.Name))
	for _, f := range rec.Fields {
		b.WriteString(e.renderer.FormatField(e.TypeText(f.Type), f.Key))
	}
	b.WriteString(e.renderer.Footer(rec.Name))
	return b.String()
}

// Generate infers and renders every record for root, in the order of Infer.
func (e *Engine) Generate(root models.Value) []string {
	records := e.Infer(root)
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, e.Render(rec))
	}
	return out
}

// Generate renders root with r using default options.
func Generate(root models.Value, r lang.Renderer) []string {
	return NewEngine(r).Generate(root)
}
