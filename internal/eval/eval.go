// Package eval is the tree-walking evaluator: dispatch between
// self-evaluating forms, symbol lookups and cons-as-call forms, the
// eleven special forms, and macro expansion, all threaded through one
// symtab.Table exactly as SPEC_FULL.md §4.E describes (grounded on
// internal/core/eval/eval.go's Engine wrapping one adt.Runtime).
package eval

import (
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/symtab"
	"github.com/akuukka/go-alisp/internal/value"
)

// maxDepth bounds Eval's own recursion, the evaluator-level guard
// against runaway self-recursive user code the reader has no reason to
// enforce itself.
const maxDepth = 500

// Evaluator holds the one symbol table + binding stack a program runs
// against.
type Evaluator struct {
	Table *symtab.Table
	depth int
}

// New builds an Evaluator over table.
func New(table *symtab.Table) *Evaluator {
	return &Evaluator{Table: table}
}

// Eval reduces form to a value, per the dispatch rule of §4.E: a
// self-evaluating form returns itself, a symbol resolves against the
// table (honoring any active dynamic binding), and a cons cell is
// evaluated as a special form or a function/macro call.
func (e *Evaluator) Eval(form value.Value) (value.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxDepth {
		return nil, lerrors.NewUnableToEvaluate("maximum recursion depth exceeded")
	}

	if value.SelfEvaluates(form) {
		return form, nil
	}

	switch v := form.(type) {
	case *value.Symbol:
		return e.evalSymbol(v)
	case *value.Cons:
		return e.evalCons(v)
	default:
		// Vectors, functions and multi-value carriers are never produced
		// by the reader; they only reach Eval as already-materialized
		// runtime values (e.g. returned from one call and handed
		// straight to another), so they are self-evaluating here too.
		return form, nil
	}
}

// EvalAll evaluates forms left to right, returning the last result (or
// Nil for an empty sequence). This backs progn and every other
// implicit-body construct (let, defun, user function calls).
func (e *Evaluator) EvalAll(forms []value.Value) (value.Value, error) {
	var result value.Value = value.Nil
	for _, f := range forms {
		v, err := e.Eval(f)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) evalSymbol(sym *value.Symbol) (value.Value, error) {
	canon := e.Table.Intern(sym.Name())
	v, bound := e.Table.Resolve(canon)
	if !bound {
		return nil, lerrors.NewVoidVariable(sym.Name())
	}
	return v, nil
}

func (e *Evaluator) evalCons(c *value.Cons) (value.Value, error) {
	head, ok := c.Car.(*value.Symbol)
	if !ok {
		return nil, lerrors.NewUnableToEvaluate("invalid function: %s", value.Describe(c.Car))
	}
	name := head.Name()
	argForms, ok := value.ToSlice(c.Cdr)
	if !ok {
		return nil, lerrors.NewUnableToEvaluate("malformed call to %s: improper argument list", name)
	}

	if sf, ok := specialForms[name]; ok {
		return sf(e, argForms)
	}

	sym := e.Table.Intern(name)
	fn := sym.Function()
	if fn == nil {
		return nil, lerrors.NewVoidFunction(name)
	}

	if fn.IsMacro {
		return e.evalMacroCall(fn, argForms)
	}
	return e.evalFunctionCall(fn, argForms)
}

// checkArity applies the uniform MinArgs/MaxArgs check shared by
// native and user-defined functions alike.
func checkArity(fn *value.Function, n int) error {
	if n < fn.MinArgs || (fn.MaxArgs >= 0 && n > fn.MaxArgs) {
		return lerrors.NewWrongNumberOfArguments(fn.Name, n)
	}
	return nil
}

func (e *Evaluator) evalFunctionCall(fn *value.Function, argForms []value.Value) (value.Value, error) {
	args := make([]value.Value, len(argForms))
	for i, f := range argForms {
		v, err := e.Eval(f)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if err := checkArity(fn, len(args)); err != nil {
		return nil, err
	}
	if fn.Native != nil {
		return fn.Native(args)
	}
	return e.callUserFunction(fn, args)
}

// evalMacroCall binds the macro's parameters to the call's raw,
// unevaluated argument forms, evaluates the macro body to produce an
// expansion, and evaluates that expansion exactly once more. This is
// the resolved reading of the only open question in SPEC_FULL.md: a
// macro call costs one expansion step plus one evaluation of the
// result, never more.
//
// Parameter substitution is name-based, through the same dynamic
// binding stack ordinary function calls use: it does not rename a
// macro parameter that happens to share a name with a binding already
// visible at the call site. original_source shows no hygiene pass
// either, so this matches its tested behavior rather than adding one.
func (e *Evaluator) evalMacroCall(fn *value.Function, argForms []value.Value) (value.Value, error) {
	expansion, err := e.ExpandOnce(fn, argForms)
	if err != nil {
		return nil, err
	}
	return e.Eval(expansion)
}

// ExpandOnce runs fn (a macro function) against argForms, its raw
// unevaluated argument forms, and returns the resulting expansion
// without evaluating it. This is the single expansion step
// evalMacroCall performs before its own follow-up Eval, exported so
// macroexpand/macroexpand-1 (stdlib, not this package, since they are
// ordinary functions rather than evaluator dispatch machinery) can
// drive the same step without duplicating it.
func (e *Evaluator) ExpandOnce(fn *value.Function, argForms []value.Value) (value.Value, error) {
	if err := checkArity(fn, len(argForms)); err != nil {
		return nil, err
	}
	if fn.Native != nil {
		return fn.Native(argForms)
	}
	return e.callUserFunction(fn, argForms)
}

// callUserFunction pushes fn's parameters onto the binding stack,
// evaluates its body as an implicit progn, and pops every binding on
// every exit path, preserving push/pop balance even when the body
// signals an error.
func (e *Evaluator) callUserFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	stack := e.Table.Stack()
	for i, name := range fn.Params {
		stack.Push(name, args[i])
	}
	defer func() {
		for i := len(fn.Params) - 1; i >= 0; i-- {
			stack.Pop(fn.Params[i])
		}
	}()
	return e.EvalAll(fn.Body)
}
