package infer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mcncl/json2types/internal/lang"
	"github.com/mcncl/json2types/internal/parser"
)

func wideDocument(n int) string {
	var b strings.Builder
	b.WriteString(`{"items": [`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"id": %d, "name": "item-%d", "price": %d.5, "tags": ["a", null], "owner": {"id": %d}}`, i, i, i, i)
	}
	b.WriteString(`], "total": 1}`)
	return b.String()
}

func BenchmarkGenerate(b *testing.B) {
	ir, err := parser.ParseString(wideDocument(1000))
	if err != nil {
		b.Fatal(err)
	}

	for _, id := range lang.Available() {
		r, err := lang.Lookup(id)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(id, func(b *testing.B) {
			e := NewEngine(r)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = e.Generate(ir.Root)
			}
		})
	}
}

func BenchmarkParseAndGenerate(b *testing.B) {
	doc := wideDocument(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ir, err := parser.ParseString(doc)
		if err != nil {
			b.Fatal(err)
		}
		_ = Generate(ir.Root, lang.Go{})
	}
}
