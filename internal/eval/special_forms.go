package eval

import (
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

type specialForm func(e *Evaluator, args []value.Value) (value.Value, error)

var specialForms = map[string]specialForm{
	"quote":    sfQuote,
	"if":       sfIf,
	"let":      sfLet,
	"let*":     sfLetStar,
	"setq":     sfSetq,
	"set":      sfSet,
	"defun":    sfDefun,
	"defmacro": sfDefmacro,
	"progn":    sfProgn,
	"prog1":    sfProg1,
	"function": sfFunction,
}

func sfQuote(e *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerrors.NewWrongNumberOfArguments("quote", len(args))
	}
	// A bare quoted name resolves to the table's interned record, so two
	// reads of 'a are eq and symbol built-ins see that record's slots.
	if sym, ok := args[0].(*value.Symbol); ok && !sym.Interned {
		return e.Table.Intern(sym.Name()), nil
	}
	return args[0], nil
}

func sfIf(e *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return nil, lerrors.NewWrongNumberOfArguments("if", len(args))
	}
	cond, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	if !value.IsNil(cond) {
		return e.Eval(args[1])
	}
	return e.EvalAll(args[2:])
}

func sfProgn(e *Evaluator, args []value.Value) (value.Value, error) {
	return e.EvalAll(args)
}

func sfProg1(e *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Nil, nil
	}
	first, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	if _, err := e.EvalAll(args[1:]); err != nil {
		return nil, err
	}
	return first, nil
}

// letBinding is one (name, initForm) pair parsed out of a let/let*
// bindings list, which accepts both (name val) and a bare name
// (implicitly bound to nil).
type letBinding struct {
	name string
	init value.Value
}

func parseBindings(raw value.Value) ([]letBinding, error) {
	forms, ok := value.ToSlice(raw)
	if !ok {
		return nil, lerrors.NewSyntaxError("malformed let bindings list")
	}
	bindings := make([]letBinding, len(forms))
	for i, f := range forms {
		switch x := f.(type) {
		case *value.Symbol:
			bindings[i] = letBinding{name: x.Name(), init: value.Nil}
		case *value.Cons:
			pair, ok := value.ToSlice(x)
			if !ok || len(pair) == 0 || len(pair) > 2 {
				return nil, lerrors.NewSyntaxError("malformed let binding")
			}
			sym, ok := pair[0].(*value.Symbol)
			if !ok {
				return nil, lerrors.NewSyntaxError("let binding name must be a symbol")
			}
			init := value.Value(value.Nil)
			if len(pair) == 2 {
				init = pair[1]
			}
			bindings[i] = letBinding{name: sym.Name(), init: init}
		default:
			return nil, lerrors.NewSyntaxError("malformed let binding")
		}
	}
	return bindings, nil
}

// sfLet evaluates every init form in the enclosing environment before
// any of the new bindings are visible (simultaneous binding), then
// pushes them all and evaluates the body.
func sfLet(e *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) < 1 {
		return nil, lerrors.NewWrongNumberOfArguments("let", len(args))
	}
	bindings, err := parseBindings(args[0])
	if err != nil {
		return nil, err
	}
	values := make([]value.Value, len(bindings))
	for i, b := range bindings {
		v, err := e.Eval(b.init)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	stack := e.Table.Stack()
	for i, b := range bindings {
		stack.Push(b.name, values[i])
	}
	defer func() {
		for i := len(bindings) - 1; i >= 0; i-- {
			stack.Pop(bindings[i].name)
		}
	}()
	return e.EvalAll(args[1:])
}

// sfLetStar evaluates and pushes each binding in turn, so later init
// forms see earlier bindings.
func sfLetStar(e *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) < 1 {
		return nil, lerrors.NewWrongNumberOfArguments("let*", len(args))
	}
	bindings, err := parseBindings(args[0])
	if err != nil {
		return nil, err
	}
	stack := e.Table.Stack()
	pushed := 0
	defer func() {
		for i := pushed - 1; i >= 0; i-- {
			stack.Pop(bindings[i].name)
		}
	}()
	for _, b := range bindings {
		v, err := e.Eval(b.init)
		if err != nil {
			return nil, err
		}
		stack.Push(b.name, v)
		pushed++
	}
	return e.EvalAll(args[1:])
}

func sfSetq(e *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, lerrors.NewWrongNumberOfArguments("setq", len(args))
	}
	var result value.Value = value.Nil
	for i := 0; i < len(args); i += 2 {
		sym, ok := args[i].(*value.Symbol)
		if !ok {
			return nil, lerrors.NewWrongTypeArgument("symbolp", value.Describe(args[i]))
		}
		v, err := e.Eval(args[i+1])
		if err != nil {
			return nil, err
		}
		canon := e.Table.Intern(sym.Name())
		if err := e.Table.Set(canon, v); err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func sfSet(e *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, lerrors.NewWrongNumberOfArguments("set", len(args))
	}
	symVal, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	sym, ok := symVal.(*value.Symbol)
	if !ok {
		return nil, lerrors.NewWrongTypeArgument("symbolp", value.Describe(symVal))
	}
	v, err := e.Eval(args[1])
	if err != nil {
		return nil, err
	}
	canon := e.Table.Intern(sym.Name())
	if err := e.Table.Set(canon, v); err != nil {
		return nil, err
	}
	return v, nil
}

func parseParamList(raw value.Value) ([]string, error) {
	forms, ok := value.ToSlice(raw)
	if !ok {
		return nil, lerrors.NewSyntaxError("malformed parameter list")
	}
	names := make([]string, len(forms))
	for i, f := range forms {
		sym, ok := f.(*value.Symbol)
		if !ok {
			return nil, lerrors.NewSyntaxError("parameter name must be a symbol")
		}
		names[i] = sym.Name()
	}
	return names, nil
}

func defineFunction(e *Evaluator, args []value.Value, isMacro bool, formName string) (value.Value, error) {
	if len(args) < 2 {
		return nil, lerrors.NewWrongNumberOfArguments(formName, len(args))
	}
	nameSym, ok := args[0].(*value.Symbol)
	if !ok {
		return nil, lerrors.NewWrongTypeArgument("symbolp", value.Describe(args[0]))
	}
	params, err := parseParamList(args[1])
	if err != nil {
		return nil, err
	}
	canon := e.Table.Intern(nameSym.Name())
	fn := value.NewUserFunction(nameSym.Name(), params, args[2:], isMacro)
	canon.SetFunction(fn)
	return canon, nil
}

func sfDefun(e *Evaluator, args []value.Value) (value.Value, error) {
	return defineFunction(e, args, false, "defun")
}

func sfDefmacro(e *Evaluator, args []value.Value) (value.Value, error) {
	return defineFunction(e, args, true, "defmacro")
}

func sfFunction(e *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerrors.NewWrongNumberOfArguments("function", len(args))
	}
	sym, ok := args[0].(*value.Symbol)
	if !ok {
		return nil, lerrors.NewWrongTypeArgument("symbolp", value.Describe(args[0]))
	}
	canon := e.Table.Intern(sym.Name())
	fn := canon.Function()
	if fn == nil {
		return nil, lerrors.NewVoidFunction(sym.Name())
	}
	return fn, nil
}
