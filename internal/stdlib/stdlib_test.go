package stdlib_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuukka/go-alisp/internal/eval"
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/printer"
	"github.com/akuukka/go-alisp/internal/reader"
	"github.com/akuukka/go-alisp/internal/stdlib"
	"github.com/akuukka/go-alisp/internal/symtab"
	"github.com/akuukka/go-alisp/internal/value"
)

// newMachine wires a bare table + evaluator through Install and Bootstrap,
// the same sequence alisp.New(true) runs, without pulling in the facade
// package itself.
func newMachine(t *testing.T) (*symtab.Table, *eval.Evaluator, *stdlib.MessageSink) {
	t.Helper()
	table := symtab.New()
	e := eval.New(table)
	sink := stdlib.Install(table, e)
	require.NoError(t, stdlib.Bootstrap(e))
	return table, e, sink
}

func run(t *testing.T, src string) value.Value {
	t.Helper()
	_, e, _ := newMachine(t)
	form, err := reader.ReadAll(src)
	require.NoError(t, err)
	v, err := e.Eval(form)
	require.NoError(t, err)
	return v
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	_, e, _ := newMachine(t)
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

func TestArithmetic(t *testing.T) {
	assert.Equal(t, int64(6), asInt(t, run(t, "(+ 1 2 3)")))
	assert.Equal(t, int64(-4), asInt(t, run(t, "(- 1 2 3)")))
	assert.Equal(t, int64(-1), asInt(t, run(t, "(- 1)")))
	assert.Equal(t, int64(2), asInt(t, run(t, "(1- 3)")))
	assert.Equal(t, int64(4), asInt(t, run(t, "(1+ 3)")))
}

func TestDivisionByZeroRaisesArithError(t *testing.T) {
	err := runErr(t, "(/ 1 0)")
	require.Error(t, err)
	kind, ok := lerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, lerrors.KindArithError, kind)
}

func TestMixedTypeDivisionIsFloatContagious(t *testing.T) {
	got := run(t, "(/ 10 3 3.0)")
	f, isFloat, err := value.AsNumber(got)
	require.NoError(t, err)
	require.True(t, isFloat)
	assert.InDelta(t, 1.11111111, f, 1e-3)
}

func TestPredicates(t *testing.T) {
	assert.False(t, value.IsNil(run(t, "(consp (list 1))")))
	assert.True(t, value.IsNil(run(t, "(consp 1)")))
	assert.False(t, value.IsNil(run(t, "(numberp 1.5)")))
	assert.False(t, value.IsNil(run(t, "(eq 'a 'a)")))
}

func TestListFunctions(t *testing.T) {
	assert.Equal(t, int64(3), asInt(t, run(t, "(car (cdr (list 1 3 5)))")))
	assert.False(t, value.IsNil(run(t, "(let ((l (make-list 3 '(a b)))) (eq (car l) (cadr l)))")))
}

func TestCyclicListPrintsAsBackReference(t *testing.T) {
	got := run(t, "(progn (setq z (list 1 2 3)) (setcdr (cdr (cdr z)) (cdr z)) z)")
	elems, cyc := value.ToSlice(got)
	// a genuinely cyclic cons never terminates into a proper slice.
	assert.False(t, cyc)
	_ = elems
	assert.Equal(t, "(1 2 3 2 . #2)", printer.Print(got))
}

func TestSymbolInternAndUnintern(t *testing.T) {
	table, _, _ := newMachine(t)
	sym := table.Intern("my-sym")
	_, ok := table.Lookup("my-sym")
	require.True(t, ok)
	table.Unintern("my-sym")
	_, ok = table.Lookup("my-sym")
	require.False(t, ok)
	// the symbol identity itself survives unintern; only discovery by
	// name is severed.
	assert.Equal(t, "my-sym", sym.Name())
}

func TestInternSoftReturnsNilForUnknownName(t *testing.T) {
	assert.True(t, value.IsNil(run(t, `(intern-soft "never-interned")`)))
}

func TestMakeSymbolIsUninterned(t *testing.T) {
	table, e, _ := newMachine(t)
	form, err := reader.ReadAll(`(make-symbol "fresh")`)
	require.NoError(t, err)
	got, err := e.Eval(form)
	require.NoError(t, err)
	sym, err := value.AsSymbol(got)
	require.NoError(t, err)
	assert.Equal(t, "fresh", sym.Name())
	_, ok := table.Lookup("fresh")
	assert.False(t, ok)
}

func TestSymbolValueAndBoundp(t *testing.T) {
	assert.True(t, value.IsNil(run(t, "(boundp 'never-set)")))
	assert.False(t, value.IsNil(run(t, "(progn (setq z 1) (boundp 'z))")))
	assert.Equal(t, int64(1), asInt(t, run(t, "(progn (setq z 1) (symbol-value 'z))")))
}

func TestMakunboundVoidsTheSymbol(t *testing.T) {
	err := runErr(t, "(progn (setq z 1) (makunbound 'z) z)")
	require.Error(t, err)
	kind, ok := lerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, lerrors.KindVoidVariable, kind)
}

func TestSignalCarriesDataAsMessage(t *testing.T) {
	err := runErr(t, `(signal 'my-error (list "boom" 1 2))`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestMessageFormatsDirectives(t *testing.T) {
	var got string
	table := symtab.New()
	e := eval.New(table)
	sink := stdlib.Install(table, e)
	require.NoError(t, stdlib.Bootstrap(e))
	sink.Handler = func(s string) { got = s }

	form, err := reader.ReadAll(`(message "%s scored %d%%" "alice" 90)`)
	require.NoError(t, err)
	_, err = e.Eval(form)
	require.NoError(t, err)
	assert.Equal(t, "alice scored 90%", got)
}

func TestMessageRejectsUnknownDirective(t *testing.T) {
	err := runErr(t, `(message "%q" 1)`)
	require.Error(t, err)
}

func TestMacroexpand1ExpandsExactlyOnce(t *testing.T) {
	got := run(t, `(progn
		(defmacro inc (v) (list 'setq v (list '1+ v)))
		(macroexpand-1 '(inc x)))`)
	// the expansion is itself an unevaluated form: (setq x (1+ x)).
	elems, ok := value.ToSlice(got)
	require.True(t, ok)
	require.Len(t, elems, 3)
	sym, err := value.AsSymbol(elems[0])
	require.NoError(t, err)
	assert.Equal(t, "setq", sym.Name())
}

func TestMacroexpandOnNonMacroCallReturnsUnchanged(t *testing.T) {
	got := run(t, "(macroexpand '(+ 1 2))")
	elems, ok := value.ToSlice(got)
	require.True(t, ok)
	require.Len(t, elems, 3)
}

func TestBootstrapDefinesCxrFamily(t *testing.T) {
	assert.Equal(t, int64(1), asInt(t, run(t, "(caar '((1 2) 3))")))
	assert.Equal(t, int64(2), asInt(t, run(t, "(cadr '(1 2 3))")))
}

func TestBootstrapPushAndPop(t *testing.T) {
	got := run(t, "(progn (setq l nil) (push 1 l) (push 2 l) (pop l))")
	assert.Equal(t, int64(2), asInt(t, got))
}

func TestBootstrapSetqMacro(t *testing.T) {
	assert.Equal(t, int64(5), asInt(t, run(t, "(progn (setq x 5) x)")))
}

func TestBootstrapCarSafeCdrSafe(t *testing.T) {
	assert.True(t, value.IsNil(run(t, "(car-safe 1)")))
	assert.True(t, value.IsNil(run(t, "(cdr-safe 1)")))
}

func TestStringFunctions(t *testing.T) {
	got := run(t, `(concat "foo" "bar")`)
	s, err := value.AsString(got)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s.String(), "foo"))
}
