package stdlib

import (
	"github.com/akuukka/go-alisp/internal/eval"
	"github.com/akuukka/go-alisp/internal/symtab"
	"github.com/akuukka/go-alisp/internal/value"
)

// installMacroExpansion registers macroexpand and macroexpand-1
// directly as value.Native closures bound to e, since they drive the
// evaluator's own expansion step (e.ExpandOnce) rather than a pure
// value-level primitive a builtin.Call could express. Ported from
// MacroFunctions.cpp's macroExpand(once, obj) / isMacroCall.
func installMacroExpansion(table *symtab.Table, e *eval.Evaluator) {
	expandSym := table.Intern("macroexpand")
	expandSym.SetFunction(value.NewNative("macroexpand", 1, 1, func(args []value.Value) (value.Value, error) {
		return macroExpand(e, table, args[0], false)
	}))

	expand1Sym := table.Intern("macroexpand-1")
	expand1Sym.SetFunction(value.NewNative("macroexpand-1", 1, 1, func(args []value.Value) (value.Value, error) {
		return macroExpand(e, table, args[0], true)
	}))
}

// macroExpand repeatedly expands obj while its head resolves to a
// macro function, stopping after the first step when once is set. A
// form that is not a macro call at all (including every non-cons atom)
// is returned unchanged.
func macroExpand(e *eval.Evaluator, table *symtab.Table, obj value.Value, once bool) (value.Value, error) {
	for {
		fn, argForms, isCall := macroCallParts(table, obj)
		if !isCall {
			return obj, nil
		}
		expansion, err := e.ExpandOnce(fn, argForms)
		if err != nil {
			return nil, err
		}
		obj = expansion
		if once {
			return obj, nil
		}
	}
}

// macroCallParts reports whether obj is a cons whose car names a macro
// function, and if so returns that function plus the call's raw
// argument forms.
func macroCallParts(table *symtab.Table, obj value.Value) (*value.Function, []value.Value, bool) {
	cell, ok := obj.(*value.Cons)
	if !ok {
		return nil, nil, false
	}
	sym, ok := cell.Car.(*value.Symbol)
	if !ok {
		return nil, nil, false
	}
	canon, ok := table.Lookup(sym.Name())
	if !ok {
		return nil, nil, false
	}
	fn := canon.Function()
	if fn == nil || !fn.IsMacro {
		return nil, nil, false
	}
	argForms, ok := value.ToSlice(cell.Cdr)
	if !ok {
		return nil, nil, false
	}
	return fn, argForms, true
}
