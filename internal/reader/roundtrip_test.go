package reader_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/akuukka/go-alisp/internal/printer"
	"github.com/akuukka/go-alisp/internal/reader"
	"github.com/akuukka/go-alisp/internal/value"
)

// valueEqual lets cmp.Diff report a structural mismatch rather than
// comparing the value model's unexported cycle-bookkeeping fields
// directly, which cmp otherwise refuses to look inside. Each read
// yields fresh uninterned symbols, so symbols compare by name; cons
// cells recurse; everything else uses value.Equal.
var valueEqual = cmp.Comparer(structEqual)

func structEqual(a, b value.Value) bool {
	sa, aSym := a.(*value.Symbol)
	sb, bSym := b.(*value.Symbol)
	if aSym || bSym {
		return aSym && bSym && sa.Name() == sb.Name()
	}
	ca, aCons := a.(*value.Cons)
	cb, bCons := b.(*value.Cons)
	if aCons || bCons {
		return aCons && bCons && structEqual(ca.Car, cb.Car) && structEqual(ca.Cdr, cb.Cdr)
	}
	return value.Equal(a, b)
}

// TestPrintParseRoundTrip checks spec §8 invariant 3: for every parsed
// form f, print(parse(print(f))) is structurally equivalent to f, for
// every non-cyclic form the reader can express.
func TestPrintParseRoundTrip(t *testing.T) {
	sources := []string{
		`42`,
		`-7`,
		`3.5`,
		`"hello world"`,
		`?a`,
		`sym`,
		`(1 2 3)`,
		`(1 . 2)`,
		`(a (b c) (1 2.0 "s"))`,
		`'(quoted form)`,
		`(defun f (x) (+ x 1))`,
	}
	for _, src := range sources {
		f, err := reader.ReadAll(src)
		require.NoError(t, err, src)

		printed := printer.Print(f)
		reparsed, err := reader.ReadAll(printed)
		require.NoError(t, err, "reparsing %q", printed)

		if diff := cmp.Diff(f, reparsed, valueEqual); diff != "" {
			t.Errorf("round trip mismatch for %q (printed %q): %s", src, printed, diff)
		}
	}
}
