package engine

import (
	"math"
	"strconv"
)

// Cast coerces v to the type to. Identity conversions (v.Kind() == to)
// always succeed unchanged; every other supported conversion is listed in
// spec.md §4.1. String -> Int parses the text as a base-10 integer and fails
// FailedCast when it is not one. Anything else fails InvalidCast.
func (v Value) Cast(to Type) (Value, error) {
	if v.kind == to {
		return v, nil
	}
	switch to {
	case TypeNone:
		return None(), nil
	case TypeType:
		return TypeValue(v.kind), nil
	case TypeFloat:
		if v.kind == TypeInt {
			return Float(float64(v.i)), nil
		}
	case TypeInt:
		switch v.kind {
		case TypeFloat:
			return Int(int64(math.Round(v.f))), nil
		case TypeString:
			i, err := strconv.ParseInt(v.s, 10, 64)
			if err != nil {
				return Value{}, &Error{Kind: ErrFailedCast, Value: v, ToType: to}
			}
			return Int(i), nil
		}
	case TypeBool:
		if b, ok := v.castToBool(); ok {
			return Bool(b), nil
		}
	case TypeString:
		switch v.kind {
		case TypeBool, TypeInt, TypeFloat:
			return String(v.String()), nil
		}
	}
	return Value{}, &Error{Kind: ErrInvalidCast, FromType: v.kind, ToType: to, Value: v}
}

// castToBool implements the "* -> Bool" family of conversions from
// spec.md §4.1. Float treats NaN as zero-like (returns false); this is
// called out in spec.md §9 as a surprising behavior inherited deliberately
// from the source rather than one introduced here.
func (v Value) castToBool() (bool, bool) {
	switch v.kind {
	case TypeInt:
		return v.i != 0, true
	case TypeFloat:
		return !(v.f == 0 || math.IsNaN(v.f)), true
	case TypeString:
		return !v.isEmpty(), true
	case TypeInstruction:
		return !v.instr.IsNoop(), true
	case TypeList:
		return !v.isEmpty(), true
	case TypeMap:
		return !v.isEmpty(), true
	case TypeNone:
		return false, true
	default:
		return false, false
	}
}

// Parse interprets v, which must be a String, as the target type's textual
// form. Parsing to String is the identity. Any other target fails
// InvalidParse.
func (v Value) Parse(to Type) (Value, error) {
	if v.kind != TypeString {
		return Value{}, &Error{Kind: ErrNonStringParse, Value: v}
	}
	if to == TypeString {
		return v, nil
	}
	switch to {
	case TypeBool:
		b, err := strconv.ParseBool(v.s)
		if err != nil {
			return Value{}, &Error{Kind: ErrFailedParse, ToType: to, Value: v}
		}
		return Bool(b), nil
	case TypeInt:
		i, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return Value{}, &Error{Kind: ErrFailedParse, ToType: to, Value: v}
		}
		return Int(i), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return Value{}, &Error{Kind: ErrFailedParse, ToType: to, Value: v}
		}
		return Float(f), nil
	default:
		return Value{}, &Error{Kind: ErrInvalidParse, ToType: to}
	}
}
