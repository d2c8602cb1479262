package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is the tagged sum of the runtime universe. The zero Value is the
// None variant, matching the language's default/unit value.
type Value struct {
	kind Type

	b     bool
	i     int64
	f     float64
	s     string
	id    Id
	typ   Type
	instr Instruction
	list  []Value
	m     map[string]*Value
}

// None returns the unit value.
func None() Value { return Value{kind: TypeNone} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: TypeBool, b: b} }

// Int wraps a 64-bit signed integer.
func Int(i int64) Value { return Value{kind: TypeInt, i: i} }

// Float wraps a 64-bit IEEE-754 float.
func Float(f float64) Value { return Value{kind: TypeFloat, f: f} }

// String wraps immutable text.
func String(s string) Value { return Value{kind: TypeString, s: s} }

// IdValue wraps a reference to a variable slot. It is not automatically
// dereferenced; only Map.MaybeRead substitutes the contained value.
func IdValue(id Id) Value { return Value{kind: TypeId, id: id} }

// TypeValue wraps a first-class type discriminator.
func TypeValue(t Type) Value { return Value{kind: TypeType, typ: t} }

// InstructionValue wraps an instruction as data, enabling meta-programming
// via Perform.
func InstructionValue(i Instruction) Value { return Value{kind: TypeInstruction, instr: i} }

// List wraps an ordered sequence of values.
func List(xs []Value) Value { return Value{kind: TypeList, list: xs} }

// Map wraps a mapping from string keys to values. Iteration order is
// always the sorted key order (see Keys), so the choice of backing
// structure here — a plain Go map — is observationally equivalent to an
// ordered associative container as long as every traversal goes through
// Keys.
func Map(m map[string]Value) Value {
	boxed := make(map[string]*Value, len(m))
	for k, v := range m {
		v := v
		boxed[k] = &v
	}
	return Value{kind: TypeMap, m: boxed}
}

// Kind reports v's variant tag.
func (v Value) Kind() Type { return v.kind }

func (v Value) BoolValue() bool        { return v.b }
func (v Value) IntValue() int64        { return v.i }
func (v Value) FloatValue() float64    { return v.f }
func (v Value) StringValue() string    { return v.s }
func (v Value) IdOf() Id               { return v.id }
func (v Value) TypeOf() Type           { return v.typ }
func (v Value) InstructionOf() Instruction { return v.instr }
func (v Value) ListOf() []Value        { return v.list }

// Keys returns the Map's keys in sorted order — the order String and
// serialization traverse a Map in. Equality and Merge range over the
// backing Go map directly; their results do not depend on order.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MapGet returns the value stored at key, and whether it was present.
func (v Value) MapGet(key string) (Value, bool) {
	p, ok := v.m[key]
	if !ok {
		return Value{}, false
	}
	return *p, true
}

// deepCopy produces a Value independent of v for the containers that can be
// mutated in place after construction (List, Map). Scalars, Id, Type and
// Instruction are immutable once built, so a shallow copy is already an
// independent value for them — instruction trees in particular are shared
// structurally by design (spec.md §3) and are never mutated after
// construction, so copying the Instruction field never needs to recurse.
func (v Value) deepCopy() Value {
	switch v.kind {
	case TypeList:
		out := make([]Value, len(v.list))
		for i, x := range v.list {
			out[i] = x.deepCopy()
		}
		return Value{kind: TypeList, list: out}
	case TypeMap:
		out := make(map[string]*Value, len(v.m))
		for k, p := range v.m {
			cp := p.deepCopy()
			out[k] = &cp
		}
		return Value{kind: TypeMap, m: out}
	default:
		return v
	}
}

// Equal is structural equality: two values with different variant tags are
// never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case TypeNone:
		return true
	case TypeBool:
		return v.b == other.b
	case TypeInt:
		return v.i == other.i
	case TypeFloat:
		return v.f == other.f
	case TypeString:
		return v.s == other.s
	case TypeId:
		return v.id == other.id
	case TypeType:
		return v.typ == other.typ
	case TypeInstruction:
		return v.instr.Equal(other.instr)
	case TypeList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case TypeMap:
		if len(v.m) != len(other.m) {
			return false
		}
		for k, p := range v.m {
			q, ok := other.m[k]
			if !ok || !p.Equal(*q) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v's canonical text representation, used both by the cast
// to String and by Debug.
func (v Value) String() string {
	switch v.kind {
	case TypeNone:
		return "None"
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeString:
		return v.s
	case TypeId:
		return fmt.Sprintf("%v(%d)", v.id.Partition, v.id.Index)
	case TypeType:
		return v.typ.String()
	case TypeInstruction:
		return v.instr.String()
	case TypeList:
		parts := make([]string, len(v.list))
		for i, x := range v.list {
			parts[i] = x.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeMap:
		keys := v.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			val, _ := v.MapGet(k)
			parts[i] = fmt.Sprintf("%q: %s", k, val.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<invalid value>"
	}
}

// isEmpty reports whether v is the "zero-like" representative of its own
// variant, used by the Bool coercion.
func (v Value) isEmpty() bool {
	switch v.kind {
	case TypeString:
		return v.s == ""
	case TypeList:
		return len(v.list) == 0
	case TypeMap:
		return len(v.m) == 0
	default:
		return true
	}
}
