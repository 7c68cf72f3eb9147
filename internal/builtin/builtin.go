// Package builtin is the registration surface native functions are
// declared through: a literal table of name, arity and a typed Call
// accessor in place of hand-rolled argument-count and type checks in
// every native body (spec §4.F). internal/stdlib populates this
// surface; Registry.Install puts the result into a symtab.Table as
// ordinary *value.Function records, indistinguishable at call sites
// from a user-defined defun.
package builtin

import (
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// Builtin is one native function's declarative description. MaxArgs of
// -1 means unbounded, mirroring value.Function's own convention.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	IsMacro bool
	Fn      func(c *Call) (value.Value, error)
}

// Call carries one invocation's already-evaluated argument list (or,
// for a macro, the unevaluated forms) plus typed accessors that raise
// lerrors.NewWrongTypeArgument on mismatch instead of making every
// native body repeat the same type switch.
type Call struct {
	Name string
	args []value.Value
}

func newCall(name string, args []value.Value) *Call {
	return &Call{Name: name, args: args}
}

// Len reports how many arguments were supplied.
func (c *Call) Len() int { return len(c.args) }

// Arg returns the i'th argument unconverted, or value.Nil if i is past
// the end (the conventional reading of a trailing optional argument).
func (c *Call) Arg(i int) value.Value {
	if i < 0 || i >= len(c.args) {
		return value.Nil
	}
	return c.args[i]
}

// Has reports whether an i'th argument was actually supplied.
func (c *Call) Has(i int) bool { return i >= 0 && i < len(c.args) }

func (c *Call) Int(i int) (int64, error) { return value.AsInt(c.Arg(i)) }

func (c *Call) Float64(i int) (float64, error) { return value.AsFloat(c.Arg(i)) }

// Number reads argument i as a float64 plus whether it was originally a
// Float, for built-ins that implement the mixed-arithmetic contagion
// rule (SPEC_FULL.md §9).
func (c *Call) Number(i int) (f float64, wasFloat bool, err error) {
	return value.AsNumber(c.Arg(i))
}

func (c *Call) String(i int) (*value.StringObj, error) { return value.AsString(c.Arg(i)) }

func (c *Call) Cons(i int) (*value.Cons, error) { return value.AsCons(c.Arg(i)) }

func (c *Call) Sym(i int) (*value.Symbol, error) { return value.AsSymbol(c.Arg(i)) }

func (c *Call) Character(i int) (rune, error) { return value.AsCharacter(c.Arg(i)) }

func (c *Call) Function(i int) (*value.Function, error) { return value.AsFunction(c.Arg(i)) }

func (c *Call) Vector(i int) (*value.Vector, error) { return value.AsVector(c.Arg(i)) }

// List reads argument i as a proper, non-cyclical list's elements.
func (c *Call) List(i int) ([]value.Value, error) { return value.AsList(c.Arg(i)) }

// checkArity validates the supplied count against the declared
// MinArgs/MaxArgs before Fn ever runs, the uniform check every native
// function previously had to perform by hand.
func (b *Builtin) checkArity(n int) error {
	if n < b.MinArgs || (b.MaxArgs >= 0 && n > b.MaxArgs) {
		return lerrors.NewWrongNumberOfArguments(b.Name, n)
	}
	return nil
}

// Invoke runs b against args, checking arity first.
func (b *Builtin) Invoke(args []value.Value) (value.Value, error) {
	if err := b.checkArity(len(args)); err != nil {
		return nil, err
	}
	return b.Fn(newCall(b.Name, args))
}

// AsNative adapts b into a value.Native closure suitable for
// value.NewNative, so that the evaluator can treat a registered
// built-in exactly like any other function value.
func (b *Builtin) AsNative() value.Native {
	return func(args []value.Value) (value.Value, error) {
		return b.Invoke(args)
	}
}
