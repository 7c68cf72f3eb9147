// Package value implements the tagged heap of values the reader
// produces and the evaluator reduces: nil, integers, floats,
// characters, strings, symbol references, cons cells, functions and
// vectors. Strings, cons cells, symbol records and vectors are shared
// by reference (invariant 2 of the data model); everything else is
// copied like any other Go value.
package value

import "github.com/akuukka/go-alisp/internal/cycle"

// Kind is the discriminator of the closed tagged sum described by the
// data model: every Value reports exactly one of these.
type Kind uint8

const (
	NilKind Kind = iota
	IntKind
	FloatKind
	CharKind
	StringKind
	SymbolKind
	ConsKind
	FunctionKind
	VectorKind
	ValuesKind
)

func (k Kind) String() string {
	switch k {
	case NilKind:
		return "nil"
	case IntKind:
		return "integer"
	case FloatKind:
		return "float"
	case CharKind:
		return "character"
	case StringKind:
		return "string"
	case SymbolKind:
		return "symbol"
	case ConsKind:
		return "cons"
	case FunctionKind:
		return "function"
	case VectorKind:
		return "vector"
	case ValuesKind:
		return "values"
	default:
		return "unknown"
	}
}

// Value is implemented by every member of the tagged sum.
type Value interface {
	Kind() Kind
}

// Integer is a 64-bit signed integer, value-copied on assignment.
type Integer int64

func (Integer) Kind() Kind { return IntKind }

// Float is an IEEE-754 double, value-copied on assignment.
type Float float64

func (Float) Kind() Kind { return FloatKind }

// Character is a Unicode scalar value, distinct from Integer for
// printing and type predicates even though integers in its range may
// be used interchangeably in contexts that accept either (see
// AsCharacter).
type Character rune

func (Character) Kind() Kind { return CharKind }

// nilValue is the singleton empty list. It is also, for evaluation
// purposes, what the symbol named "nil" evaluates to (see symtab).
type nilValue struct{}

func (nilValue) Kind() Kind { return NilKind }

// Nil is the unique empty-list value.
var Nil Value = nilValue{}

// IsNil reports whether v is the empty list.
func IsNil(v Value) bool {
	_, ok := v.(nilValue)
	return ok
}

// IsList reports whether v is nil or a non-empty cons cell: the data
// model's disjoint union that defines "list".
func IsList(v Value) bool {
	if IsNil(v) {
		return true
	}
	_, ok := v.(*Cons)
	return ok
}

func IsInt(v Value) bool    { _, ok := v.(Integer); return ok }
func IsFloat(v Value) bool  { _, ok := v.(Float); return ok }
func IsChar(v Value) bool   { _, ok := v.(Character); return ok }
func IsString(v Value) bool { _, ok := v.(*StringObj); return ok }
func IsSymbol(v Value) bool { _, ok := v.(*Symbol); return ok }
func IsCons(v Value) bool   { _, ok := v.(*Cons); return ok }
func IsFunction(v Value) bool {
	_, ok := v.(*Function)
	return ok
}
func IsVector(v Value) bool { _, ok := v.(*Vector); return ok }

// IsNumber reports whether v is an Integer or a Float.
func IsNumber(v Value) bool { return IsInt(v) || IsFloat(v) }

// SelfEvaluates reports whether v evaluates to itself: numbers,
// characters, strings, and the symbols nil and t.
func SelfEvaluates(v Value) bool {
	switch x := v.(type) {
	case Integer, Float, Character, *StringObj, nilValue:
		return true
	case *Symbol:
		return x.Name() == "t"
	default:
		return false
	}
}

// shared is implemented by the reference-counted variants so generic
// code (Clone, cycle-manager wiring) can treat them uniformly.
type shared interface {
	Value
	cycle.Node
}

// Clone returns a handle to v: for strings, cons cells, symbols,
// vectors and functions this shares the underlying storage (and bumps
// its refcount); for numbers, characters and nil it is a plain copy.
func Clone(v Value) Value {
	if s, ok := v.(shared); ok {
		cycle.Retain(s)
	}
	return v
}

// Release drops a handle to v obtained from Clone, a binding-stack
// push, or any other slot that owns a retained reference.
func Release(v Value) {
	if s, ok := v.(shared); ok {
		cycle.Release(s)
	}
}

// Retain records a new handle to v without constructing one: used when
// storing an already-held value into a second slot (e.g. both car and
// cdr of a new cons pointing at the same list).
func Retain(v Value) {
	if s, ok := v.(shared); ok {
		cycle.Retain(s)
	}
}
