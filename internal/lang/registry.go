package lang

import (
	"sort"
	"strings"

	"github.com/mcncl/json2types/internal/errors"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "go"

var (
	renderers = make(map[string]Renderer)
	aliases   = make(map[string]string)
)

func init() {
	Register(Go{}, "golang")
	Register(Rust{}, "rs")
	Register(Scala{})
	Register(Java{})
	Register(TypeScript{}, "ts")
	Register(Python{}, "py")
}

// Register adds a renderer under its name and any extra aliases.
// Registration is expected to happen during package initialization.
func Register(r Renderer, extra ...string) {
	name := normalize(r.Name())
	renderers[name] = r
	for _, alias := range extra {
		aliases[normalize(alias)] = name
	}
}

// Lookup finds a renderer by case-insensitive identifier or alias.
func Lookup(id string) (Renderer, error) {
	key := normalize(id)
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	r, ok := renderers[key]
	if !ok {
		err := errors.Wrapf(errors.ErrUnsupportedLanguage, "%q", id)
		return nil, errors.WithHintf(err, "supported languages: %s", strings.Join(Available(), ", "))
	}
	return r, nil
}

// Default returns the renderer used when no language is specified.
func Default() Renderer {
	return renderers[DefaultLanguage]
}

// Available returns the canonical names of all registered renderers, sorted.
func Available() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
