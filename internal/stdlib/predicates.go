package stdlib

import (
	"github.com/akuukka/go-alisp/internal/builtin"
	"github.com/akuukka/go-alisp/internal/value"
)

// boolFn wraps a Go predicate as the uniform t-or-nil return every type
// predicate in original_source's Machine::init*Functions uses (they
// return a C++ bool that the framework converts; here that conversion
// is explicit since builtins hand back value.Value directly).
func boolFn(trueVal value.Value, pred func(c *builtin.Call) bool) func(c *builtin.Call) (value.Value, error) {
	return func(c *builtin.Call) (value.Value, error) {
		if pred(c) {
			return trueVal, nil
		}
		return value.Nil, nil
	}
}

func addPredicates(reg *builtin.Registry, trueVal value.Value) {
	one := func(pred func(v value.Value) bool) func(c *builtin.Call) bool {
		return func(c *builtin.Call) bool { return pred(c.Arg(0)) }
	}

	reg.Add(&builtin.Builtin{Name: "consp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsCons))})
	reg.Add(&builtin.Builtin{Name: "listp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsList))})
	reg.Add(&builtin.Builtin{Name: "nlistp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(func(v value.Value) bool { return !value.IsList(v) }))})
	reg.Add(&builtin.Builtin{Name: "atom", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(func(v value.Value) bool { return !value.IsCons(v) }))})
	reg.Add(&builtin.Builtin{Name: "symbolp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsSymbol))})
	reg.Add(&builtin.Builtin{Name: "stringp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsString))})
	reg.Add(&builtin.Builtin{Name: "string-or-null-p", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(func(v value.Value) bool { return value.IsString(v) || value.IsNil(v) }))})
	reg.Add(&builtin.Builtin{Name: "characterp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsChar))})
	reg.Add(&builtin.Builtin{Name: "char-or-string-p", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(func(v value.Value) bool { return value.IsString(v) || value.IsChar(v) }))})
	reg.Add(&builtin.Builtin{Name: "integerp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsInt))})
	reg.Add(&builtin.Builtin{Name: "floatp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsFloat))})
	reg.Add(&builtin.Builtin{Name: "numberp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsNumber))})
	reg.Add(&builtin.Builtin{Name: "functionp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsFunction))})
	reg.Add(&builtin.Builtin{Name: "vectorp", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsVector))})
	reg.Add(&builtin.Builtin{Name: "null", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsNil))})
	reg.Add(&builtin.Builtin{Name: "not", MinArgs: 1, MaxArgs: 1,
		Fn: boolFn(trueVal, one(value.IsNil))})

	reg.Add(&builtin.Builtin{Name: "eq", MinArgs: 2, MaxArgs: 2,
		Fn: boolFn(trueVal, func(c *builtin.Call) bool { return value.Eq(c.Arg(0), c.Arg(1)) })})
	reg.Add(&builtin.Builtin{Name: "equal", MinArgs: 2, MaxArgs: 2,
		Fn: boolFn(trueVal, func(c *builtin.Call) bool { return value.Equal(c.Arg(0), c.Arg(1)) })})
}
