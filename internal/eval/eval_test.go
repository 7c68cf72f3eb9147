package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/reader"
	"github.com/akuukka/go-alisp/internal/symtab"
	"github.com/akuukka/go-alisp/internal/value"
)

func run(t *testing.T, src string) value.Value {
	t.Helper()
	table := symtab.New()
	e := New(table)
	form, err := reader.ReadAll(src)
	require.NoError(t, err)
	v, err := e.Eval(form)
	require.NoError(t, err)
	return v
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	table := symtab.New()
	e := New(table)
	form, err := reader.ReadAll(src)
	require.NoError(t, err)
	_, err = e.Eval(form)
	return err
}

func asInt(t *testing.T, v value.Value) int64 {
	t.Helper()
	n, err := value.AsInt(v)
	require.NoError(t, err)
	return n
}

func TestSelfEvaluatingForms(t *testing.T) {
	assert.Equal(t, int64(42), asInt(t, run(t, "42")))
	assert.True(t, value.IsNil(run(t, "nil")))
}

func TestQuoteReturnsFormUnevaluated(t *testing.T) {
	v := run(t, "'(a b c)")
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	require.Len(t, elems, 3)
	sym, err := value.AsSymbol(elems[0])
	require.NoError(t, err)
	assert.Equal(t, "a", sym.Name())
}

func TestIfBranches(t *testing.T) {
	assert.Equal(t, int64(1), asInt(t, run(t, "(if t 1 2)")))
	assert.Equal(t, int64(2), asInt(t, run(t, "(if nil 1 2)")))
	assert.True(t, value.IsNil(run(t, "(if nil 1)")))
}

func TestLetSimultaneousBinding(t *testing.T) {
	// the init for y must see the outer x, not the new one, since let
	// bindings all become visible together only after every init form
	// has run.
	got := run(t, "(let ((x 10)) (let ((x 20) (y x)) y))")
	assert.Equal(t, int64(10), asInt(t, got))
}

func TestLetStarSequentialBinding(t *testing.T) {
	got := run(t, "(let* ((x 20) (y x)) y)")
	assert.Equal(t, int64(20), asInt(t, got))
}

func TestLetUnbindsAfterBody(t *testing.T) {
	err := runErr(t, "(progn (let ((x 1)) x) x)")
	require.Error(t, err)
	kind, ok := lerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, lerrors.KindVoidVariable, kind)
}

func TestSetqAndVariableLookup(t *testing.T) {
	assert.Equal(t, int64(5), asInt(t, run(t, "(progn (setq x 5) x)")))
}

func TestSetqMultiplePairsReturnsLast(t *testing.T) {
	assert.Equal(t, int64(2), asInt(t, run(t, "(setq x 1 y 2)")))
}

func TestSetUsesEvaluatedSymbol(t *testing.T) {
	assert.Equal(t, int64(9), asInt(t, run(t, "(progn (setq s 'x) (set s 9) x)")))
}

func TestVoidVariableError(t *testing.T) {
	err := runErr(t, "nonexistent-variable-name")
	kind, ok := lerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, lerrors.KindVoidVariable, kind)
}

func TestVoidFunctionError(t *testing.T) {
	err := runErr(t, "(nonexistent-function-name 1 2)")
	kind, ok := lerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, lerrors.KindVoidFunction, kind)
}

func TestDefunAndCall(t *testing.T) {
	got := run(t, "(progn (defun identity2 (x) x) (identity2 7))")
	assert.Equal(t, int64(7), asInt(t, got))
}

func TestPrognReturnsLast(t *testing.T) {
	assert.Equal(t, int64(3), asInt(t, run(t, "(progn 1 2 3)")))
}

func TestProg1ReturnsFirst(t *testing.T) {
	assert.Equal(t, int64(1), asInt(t, run(t, "(prog1 1 (setq x 2))")))
	got := run(t, "(progn (setq x 0) (prog1 1 (setq x 2)) x)")
	assert.Equal(t, int64(2), asInt(t, got))
}

func TestFunctionSpecialForm(t *testing.T) {
	got := run(t, "(progn (defun f (x) x) (function f))")
	fn, err := value.AsFunction(got)
	require.NoError(t, err)
	assert.Equal(t, "f", fn.Name)
}

func TestDefmacroExpandsOnce(t *testing.T) {
	// my-if expands to a call to if; the result of evaluating that
	// expansion, not the expansion form itself, is what the macro call
	// should return. These tests run without the standard library, so
	// the list function the macro body calls is installed by hand.
	table := symtab.New()
	table.Intern("list").SetFunction(value.NewNative("list", 0, -1, func(args []value.Value) (value.Value, error) {
		return value.List(args...), nil
	}))
	e := New(table)
	form, err := reader.ReadAll(`(progn
		(defmacro my-if (c a b) (list 'if c a b))
		(my-if t 1 2))`)
	require.NoError(t, err)
	got, err := e.Eval(form)
	require.NoError(t, err)
	assert.Equal(t, int64(1), asInt(t, got))
}

func TestMacroCallArityChecked(t *testing.T) {
	err := runErr(t, `(progn
		(defmacro two-args (a b) (list 'quote a))
		(two-args 1))`)
	require.Error(t, err)
	kind, ok := lerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, lerrors.KindWrongNumberOfArguments, kind)
}

func TestBindingStackBalancedAfterError(t *testing.T) {
	table := symtab.New()
	e := New(table)
	form, err := reader.ReadAll(`(let ((x 1)) (nonexistent-function-name x))`)
	require.NoError(t, err)
	_, err = e.Eval(form)
	require.Error(t, err)
	assert.Equal(t, 0, table.Stack().Depth("x"))
}
