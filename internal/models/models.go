package models

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which JSON type a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON value. The zero Value is JSON null.
// Object members keep the order in which they appeared in the source document.
type Value struct {
	kind   Kind
	flag   bool
	text   string
	items  []Value
	fields *orderedmap.OrderedMap[string, Value]
}

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Number returns a JSON number holding its lexical form.
func Number(n json.Number) Value { return Value{kind: KindNumber, text: string(n)} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array returns a JSON array of the given elements.
func Array(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindArray, items: copied}
}

// Object returns a JSON object with members in the given order.
// A repeated key keeps its first position and takes the last value.
func Object(members ...Member) Value {
	fields := orderedmap.New[string, Value](len(members))
	for _, m := range members {
		fields.Set(m.Key, m.Value)
	}
	return Value{kind: KindObject, fields: fields}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v, false for any other kind.
func (v Value) AsBool() bool { return v.kind == KindBool && v.flag }

// Text returns the string contents or the number literal, "" for other kinds.
func (v Value) Text() string { return v.text }

// Number returns the number literal, "" when v is not a number.
func (v Value) Number() json.Number {
	if v.kind != KindNumber {
		return ""
	}
	return json.Number(v.text)
}

// Elements returns the array elements. The slice must not be modified.
func (v Value) Elements() []Value { return v.items }

// Members returns the object members in source order.
func (v Value) Members() []Member {
	if v.fields == nil {
		return nil
	}
	members := make([]Member, 0, v.fields.Len())
	for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
		members = append(members, Member{Key: pair.Key, Value: pair.Value})
	}
	return members
}

// Get looks up an object member by key.
func (v Value) Get(key string) (Value, bool) {
	if v.fields == nil {
		return Value{}, false
	}
	return v.fields.Get(key)
}

// Len returns the number of array elements or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return v.fields.Len()
	default:
		return 0
	}
}

// IntermediateRepresentation holds the parsed JSON document.
type IntermediateRepresentation struct {
	Root        Value
	RootIsArray bool
}
