package reader

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuukka/go-alisp/internal/value"
)

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := ReadAll(src)
	require.NoError(t, err)
	return v
}

func TestReadAtoms(t *testing.T) {
	testCases := []struct {
		src  string
		kind value.Kind
	}{
		{"42", value.IntKind},
		{"-7", value.IntKind},
		{"+7", value.IntKind},
		{"3.14", value.FloatKind},
		{"-0.5", value.FloatKind},
		{"nil", value.NilKind},
		{"t", value.SymbolKind},
		{"foo", value.SymbolKind},
		{"1+", value.SymbolKind},
		{"string=", value.SymbolKind},
		{"?a", value.CharKind},
		{`"hello"`, value.StringKind},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			v := mustRead(t, tc.src)
			assert.Equal(t, tc.kind, v.Kind())
		})
	}
}

func TestReadIntegerValue(t *testing.T) {
	v := mustRead(t, "123")
	n, err := value.AsInt(v)
	require.NoError(t, err)
	assert.Equal(t, int64(123), n)
}

func TestReadNegativeFloat(t *testing.T) {
	v := mustRead(t, "-2.5")
	f, err := value.AsFloat(v)
	require.NoError(t, err)
	assert.InDelta(t, -2.5, f, 0.0001)
}

func TestReadCharacterLiteral(t *testing.T) {
	v := mustRead(t, "?x")
	c, err := value.AsCharacter(v)
	require.NoError(t, err)
	assert.Equal(t, 'x', c)
}

func TestReadMalformedCharacterLiteral(t *testing.T) {
	_, err := ReadAll("?ab")
	assert.Error(t, err)
}

func TestReadStringHasNoEscapeProcessing(t *testing.T) {
	v := mustRead(t, `"a\nb"`)
	s, err := value.AsString(v)
	require.NoError(t, err)
	assert.Equal(t, `a\nb`, s.String())
}

func TestReadList(t *testing.T) {
	v := mustRead(t, "(1 2 3)")
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	require.Len(t, elems, 3)
	for i, want := range []int64{1, 2, 3} {
		n, err := value.AsInt(elems[i])
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestReadNestedList(t *testing.T) {
	v := mustRead(t, "(1 (2 3) 4)")
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	require.Len(t, elems, 3)
	inner, ok := value.ToSlice(elems[1])
	require.True(t, ok)
	assert.Len(t, inner, 2)
}

func TestReadDottedPair(t *testing.T) {
	v := mustRead(t, "(1 . 2)")
	c, err := value.AsCons(v)
	require.NoError(t, err)
	n, err := value.AsInt(c.Car)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = value.AsInt(c.Cdr)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestReadDottedListWithLeadingElements(t *testing.T) {
	v := mustRead(t, "(1 2 . 3)")
	c, err := value.AsCons(v)
	require.NoError(t, err)
	n, _ := value.AsInt(c.Car)
	assert.Equal(t, int64(1), n)
	rest, err := value.AsCons(c.Cdr)
	require.NoError(t, err)
	n, _ = value.AsInt(rest.Car)
	assert.Equal(t, int64(2), n)
	n, _ = value.AsInt(rest.Cdr)
	assert.Equal(t, int64(3), n)
}

func TestDotAloneIsASymbolNameOutsideDottedContext(t *testing.T) {
	v := mustRead(t, "(.)")
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	require.Len(t, elems, 1)
	sym, err := value.AsSymbol(elems[0])
	require.NoError(t, err)
	assert.Equal(t, ".", sym.Name())
}

func TestReadMalformedDottedList(t *testing.T) {
	_, err := ReadAll("(1 . 2 3)")
	assert.Error(t, err)
}

func TestReadQuoteSugar(t *testing.T) {
	v := mustRead(t, "'foo")
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	require.Len(t, elems, 2)
	sym, err := value.AsSymbol(elems[0])
	require.NoError(t, err)
	assert.Equal(t, "quote", sym.Name())
}

func TestReadQuotedListInsideList(t *testing.T) {
	v := mustRead(t, "(a 'b c)")
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	require.Len(t, elems, 3)
	quoted, ok := value.ToSlice(elems[1])
	require.True(t, ok)
	require.Len(t, quoted, 2)
	sym, err := value.AsSymbol(quoted[0])
	require.NoError(t, err)
	assert.Equal(t, "quote", sym.Name())
}

func TestReadComment(t *testing.T) {
	v := mustRead(t, "; a comment\n42")
	n, err := value.AsInt(v)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestMultipleTopLevelFormsWrapInProgn(t *testing.T) {
	v := mustRead(t, "(setq x 1) (setq y 2)")
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	require.Len(t, elems, 3)
	sym, err := value.AsSymbol(elems[0])
	require.NoError(t, err)
	assert.Equal(t, "progn", sym.Name())
}

func TestSingleTopLevelFormIsNotWrapped(t *testing.T) {
	v := mustRead(t, "(setq x 1)")
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	sym, err := value.AsSymbol(elems[0])
	require.NoError(t, err)
	assert.Equal(t, "setq", sym.Name())
}

func TestUnclosedListIsSyntaxError(t *testing.T) {
	_, err := ReadAll("(1 2")
	assert.Error(t, err)
}

func TestUnclosedStringIsSyntaxError(t *testing.T) {
	_, err := ReadAll(`"abc`)
	assert.Error(t, err)
}

func TestEmptyInputReadsAsNil(t *testing.T) {
	v := mustRead(t, "   ; just a comment\n")
	assert.True(t, value.IsNil(v))
}
