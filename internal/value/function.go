package value

import "github.com/akuukka/go-alisp/internal/cycle"

// Native is the Go implementation of a built-in function, invoked with
// the already-evaluated argument list (or, for a built-in flagged
// IsMacro, the unevaluated forms). See internal/builtin for the registration sugar
// that constructs these.
type Native func(args []Value) (Value, error)

// Function is a shared, callable record: either a native built-in or a
// user-defined one installed by defun/defmacro.
type Function struct {
	cycle.Meta

	Name string

	MinArgs int
	MaxArgs int // -1 means unbounded

	IsMacro bool

	Native Native

	// User-defined function fields. Params are the parameter names;
	// Body is the sequence of body forms, evaluated left to right with
	// Params bound on the binding stack for the call's dynamic extent.
	Params []string
	Body   []Value
}

func (*Function) Kind() Kind { return FunctionKind }

// NewNative wraps a Go function as a callable value.
func NewNative(name string, minArgs, maxArgs int, fn Native) *Function {
	f := &Function{Name: name, MinArgs: minArgs, MaxArgs: maxArgs, Native: fn}
	f.Init()
	return f
}

// NewUserFunction builds the callable installed by defun/defmacro.
func NewUserFunction(name string, params []string, body []Value, isMacro bool) *Function {
	f := &Function{
		Name:    name,
		MinArgs: len(params),
		MaxArgs: len(params),
		IsMacro: isMacro,
		Params:  params,
		Body:    body,
	}
	f.Init()
	for _, b := range body {
		Retain(b)
	}
	return f
}

func (f *Function) RefMeta() *cycle.Meta { return &f.Meta }

func (f *Function) Traverse(visit func(cycle.Node)) {
	for _, b := range f.Body {
		if n, ok := b.(shared); ok {
			visit(n)
		}
	}
}

func (f *Function) ClearLinks() {
	f.Body = nil
	f.Native = nil
}
