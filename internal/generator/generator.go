package generator

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mcncl/json2types/internal/infer"
	"github.com/mcncl/json2types/internal/lang"
	"github.com/mcncl/json2types/internal/models"
)

// DefaultSeparator is placed between two records in the assembled output.
const DefaultSeparator = "\n\n"

// Options control how rendered records are assembled.
type Options struct {
	// Package adds a package clause in front of Go output when set.
	Package string
	// Separator goes between records. Empty means DefaultSeparator.
	Separator string
}

// Generator turns a parsed document into a single source text
type Generator struct {
	engine *infer.Engine
	opts   Options
	logger *zap.Logger
}

// NewGenerator creates a new Generator rendering through engine
func NewGenerator(engine *infer.Engine, opts Options, logger *zap.Logger) *Generator {
	if engine == nil {
		engine = infer.NewEngine(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{engine: engine, opts: opts, logger: logger}
}

// Generate renders every record for ir and assembles them with the root
// record first. A document without records yields only the package clause, if any.
func (g *Generator) Generate(ir models.IntermediateRepresentation) string {
	records := g.engine.Generate(ir.Root)
	if len(records) == 0 {
		g.logger.Warn("document produced no records",
			zap.Stringer("root", ir.Root.Kind()),
			zap.Bool("rootIsArray", ir.RootIsArray),
		)
	}
	return Assemble(Order(records), g.engine.Renderer(), g.opts)
}

// Order moves the last record to the front and keeps the others in discovery
// order. For an object document the last record is the root.
func Order(records []string) []string {
	if len(records) < 2 {
		return append([]string(nil), records...)
	}
	last := len(records) - 1
	ordered := make([]string, 0, len(records))
	ordered = append(ordered, records[last])
	return append(ordered, records[:last]...)
}

// Assemble joins records with the configured separator and terminates the
// text with a newline. The package clause is only written for Go; a renderer
// preamble is written ahead of the records when there are any.
func Assemble(records []string, r lang.Renderer, opts Options) string {
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	var b strings.Builder
	if r.Name() == "go" && opts.Package != "" {
		b.WriteString("package " + opts.Package + "\n")
		if len(records) > 0 {
			b.WriteString("\n")
		}
	}
	if preamble := lang.Preamble(r); preamble != "" && len(records) > 0 {
		b.WriteString(strings.TrimRight(preamble, "\n") + "\n\n")
	}
	for i, rec := range records {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strings.TrimRight(rec, "\n"))
	}
	if len(records) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}
