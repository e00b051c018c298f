// Package naming turns JSON keys into identifiers.
package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder names the root record and stands in for the key of a top-level array.
const Placeholder = "AutoGenerated"

// TypeName splits key on underscores, upper-cases the first rune of every segment
// and joins the segments: "user_profile" becomes "UserProfile".
func TypeName(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, segment := range strings.Split(key, "_") {
		b.WriteString(UpperFirst(segment))
	}
	return b.String()
}

// CamelCase keeps the first segment as is and capitalizes the rest:
// "created_at" becomes "createdAt".
func CamelCase(key string) string {
	segments := strings.Split(key, "_")
	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(segments[0])
	for _, segment := range segments[1:] {
		b.WriteString(UpperFirst(segment))
	}
	return b.String()
}

// UpperFirst upper-cases the first rune of s. Some runes expand when upper-cased,
// so the result may be longer than s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// FromArrayKey derives a record name for the object elements of the array stored
// under key. A trailing "ies" becomes "y" and a trailing "s" is dropped before
// typeName is applied; nothing else is singularized.
func FromArrayKey(key string, typeName func(string) string) string {
	if stem, ok := strings.CutSuffix(key, "ies"); ok {
		return typeName(stem + "y")
	}
	if stem, ok := strings.CutSuffix(key, "s"); ok {
		return typeName(stem)
	}
	return typeName(key)
}
