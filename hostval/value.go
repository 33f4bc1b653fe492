package hostval

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the exchange value's representation.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is the host's generic exchange representation: a tagged union over
// the shapes both sides of the bridge understand.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    map[string]Value
}

// Constructors

func Nil() Value             { return Value{kind: KindNil} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func Int(i int64) Value      { return Value{kind: KindInt, i: i} }
func Float(f float64) Value  { return Value{kind: KindFloat, f: f} }
func String(s string) Value  { return Value{kind: KindString, s: s} }
func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Kind returns the value's representation tag.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether the value is the nil value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Accessors return the underlying representation and whether the value
// actually holds that kind.

func (v Value) AsBool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) AsInt() (int64, bool)     { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }
func (v Value) AsList() ([]Value, bool)  { return v.list, v.kind == KindList }

func (v Value) AsMap() (map[string]Value, bool) { return v.m, v.kind == KindMap }

// String renders a debug form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		return fmt.Sprintf("map(%d entries)", len(v.m))
	}
	return "invalid"
}

// Release invalidates the value and drops any compound storage it holds.
// Wrappers release every intermediate value on all exit paths; releasing
// an already-released value is a no-op.
func (v *Value) Release() {
	for i := range v.list {
		v.list[i].Release()
	}
	for k := range v.m {
		e := v.m[k]
		e.Release()
	}
	*v = Value{}
}

// ReleaseAll releases every value in vs.
func ReleaseAll(vs []Value) {
	for i := range vs {
		vs[i].Release()
	}
}
