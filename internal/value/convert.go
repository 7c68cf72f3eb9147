package value

import (
	"fmt"

	"github.com/akuukka/go-alisp/internal/lerrors"
)

// Describe renders a short, non-cyclic-safe form of v for use in error
// messages (the "printed-value" the spec's WrongTypeArgument carries).
// It is deliberately simpler than internal/printer's full cyclic/shared
// printer: error formatting must never loop forever on a pathological
// cyclic argument, so it bounds list traversal instead of detecting
// cycles precisely.
func Describe(v Value) string {
	return describe(v, 0)
}

const describeDepthCap = 64

func describe(v Value, depth int) string {
	if depth > describeDepthCap {
		return "..."
	}
	switch x := v.(type) {
	case nilValue:
		return "nil"
	case Integer:
		return fmt.Sprintf("%d", int64(x))
	case Float:
		return fmt.Sprintf("%g", float64(x))
	case Character:
		return fmt.Sprintf("?%c", rune(x))
	case *StringObj:
		return fmt.Sprintf("%q", x.String())
	case *Symbol:
		if x.Name() == "" {
			return "##"
		}
		return x.Name()
	case *Vector:
		s := "["
		for i, e := range x.Elems {
			if i > 0 {
				s += " "
			}
			s += describe(e, depth+1)
		}
		return s + "]"
	case *Function:
		return fmt.Sprintf("#<function %s>", x.Name)
	case *Cons:
		s := "("
		cur := Value(x)
		count := 0
		for {
			c, ok := cur.(*Cons)
			if !ok {
				break
			}
			if count > 0 {
				s += " "
			}
			if count >= describeDepthCap {
				s += "..."
				return s + ")"
			}
			s += describe(c.Car, depth+1)
			count++
			cur = c.Cdr
		}
		if !IsNil(cur) {
			s += " . " + describe(cur, depth+1)
		}
		return s + ")"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// AsInt extracts an Integer, failing with WrongTypeArgument otherwise.
func AsInt(v Value) (int64, error) {
	if i, ok := v.(Integer); ok {
		return int64(i), nil
	}
	return 0, lerrors.NewWrongTypeArgument("integerp", Describe(v))
}

// AsFloat extracts a Float, failing with WrongTypeArgument otherwise.
func AsFloat(v Value) (float64, error) {
	if f, ok := v.(Float); ok {
		return float64(f), nil
	}
	return 0, lerrors.NewWrongTypeArgument("floatp", Describe(v))
}

// AsNumber extracts a numeric value as a float64 plus whether the
// original was a Float, for the mixed-arithmetic coercion rule in
// SPEC_FULL.md §9 (once a float appears in a chain, the chain is
// float).
func AsNumber(v Value) (f float64, wasFloat bool, err error) {
	switch x := v.(type) {
	case Integer:
		return float64(x), false, nil
	case Float:
		return float64(x), true, nil
	default:
		return 0, false, lerrors.NewWrongTypeArgument("numberp", Describe(v))
	}
}

// AsCharacter extracts a Character. Per §3, an Integer in the valid
// scalar range is accepted interchangeably in contexts (like this one)
// that accept either.
func AsCharacter(v Value) (rune, error) {
	switch x := v.(type) {
	case Character:
		return rune(x), nil
	case Integer:
		if x >= 0 && x <= 0x10FFFF {
			return rune(x), nil
		}
	}
	return 0, lerrors.NewWrongTypeArgument("characterp", Describe(v))
}

// AsString extracts a *StringObj, failing with WrongTypeArgument
// otherwise.
func AsString(v Value) (*StringObj, error) {
	if s, ok := v.(*StringObj); ok {
		return s, nil
	}
	return nil, lerrors.NewWrongTypeArgument("stringp", Describe(v))
}

// AsSymbol extracts a *Symbol. nil is accepted as the symbol nil would
// resolve to only by way of the symbol table (callers needing that
// conversion use symtab, not this low-level extractor).
func AsSymbol(v Value) (*Symbol, error) {
	if s, ok := v.(*Symbol); ok {
		return s, nil
	}
	return nil, lerrors.NewWrongTypeArgument("symbolp", Describe(v))
}

// AsCons extracts a *Cons, failing (even on nil, the empty list) with
// WrongTypeArgument: callers that accept nil-or-cons should check
// IsNil themselves first (see AsList).
func AsCons(v Value) (*Cons, error) {
	if c, ok := v.(*Cons); ok {
		return c, nil
	}
	return nil, lerrors.NewWrongTypeArgument("consp", Describe(v))
}

// AsList extracts the elements of v if it is nil or a proper,
// non-cyclical list, and fails with WrongTypeArgument otherwise.
func AsList(v Value) ([]Value, error) {
	elems, ok := ToSlice(v)
	if !ok {
		return nil, lerrors.NewWrongTypeArgument("listp", Describe(v))
	}
	return elems, nil
}

// AsFunction extracts a *Function, failing with WrongTypeArgument
// otherwise.
func AsFunction(v Value) (*Function, error) {
	if f, ok := v.(*Function); ok {
		return f, nil
	}
	return nil, lerrors.NewWrongTypeArgument("functionp", Describe(v))
}

// AsVector extracts a *Vector, failing with WrongTypeArgument
// otherwise.
func AsVector(v Value) (*Vector, error) {
	if vec, ok := v.(*Vector); ok {
		return vec, nil
	}
	return nil, lerrors.NewWrongTypeArgument("vectorp", Describe(v))
}

// Optional converts Nil to an absent value for trailing-optional-
// argument built-ins, per the conversion protocol of §4.A.
func Optional(v Value) (Value, bool) {
	if IsNil(v) {
		return nil, false
	}
	return v, true
}
