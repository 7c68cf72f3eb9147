// Package printer renders values back to text, the read direction's
// counterpart (spec §4.H). Its one hard requirement is safety on
// cyclic structure: a proper list mutated into a cycle with setcdr
// must still print in finite text, exactly the discipline
// internal/cycle depends on existing somewhere outside itself (the
// Cycle Manager reclaims cycles; this package is what lets a program
// look at one without looping forever).
//
// The cycle notation and detection walk are ported from
// original_source/source/ConsCellObject.cpp's toString(): a spine scan
// collects the chain of cons cells reachable by repeatedly taking cdr,
// stopping the moment a cell repeats, and the print pass then walks
// that same spine again tracking how many times each cell has been
// visited so it can tell a first pass through a cell from the lap that
// closes the loop. A plain shared (but acyclic) substructure is NOT
// given any special notation, matching the original: printing it twice
// in full is exactly what original_source does too.
//
// Grounded on internal/core/debug/debug.go's small stateful printer
// struct with string-buffer helpers, generalized from debug-printing
// one adt.Node to read/write-symmetric printing of a value.Value.
package printer

import (
	"strconv"
	"strings"

	"github.com/akuukka/go-alisp/internal/value"
)

// Print renders v as text, per spec §4.H.
func Print(v value.Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v value.Value) {
	switch x := v.(type) {
	case value.Integer:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case value.Float:
		b.WriteString(formatFloat(float64(x)))
	case value.Character:
		b.WriteString("?" + string(rune(x)))
	case *value.StringObj:
		b.WriteString(`"` + x.String() + `"`)
	case *value.Symbol:
		if x.Name() == "" {
			b.WriteString("##")
			return
		}
		b.WriteString(x.Name())
	case *value.Cons:
		b.WriteString(consToString(x))
	case *value.Vector:
		writeVector(b, x)
	case *value.Function:
		if x.Name == "" {
			b.WriteString("#<function anonymous>")
			return
		}
		b.WriteString("#<function " + x.Name + ">")
	default:
		if value.IsNil(v) {
			b.WriteString("nil")
			return
		}
		writeValue(b, value.Unwrap(v))
	}
}

// formatFloat keeps a trailing ".0" on whole-number floats so a printed
// float can always be told apart from an integer, matching the data
// model's distinct IntKind/FloatKind (§3).
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeVector(b *strings.Builder, v *value.Vector) {
	b.WriteString("[")
	for i, e := range v.Elems {
		if i > 0 {
			b.WriteString(" ")
		}
		writeValue(b, e)
	}
	b.WriteString("]")
}

// spine returns the chain of cons cells reached by repeatedly taking
// cdr, starting at c, stopping at the first cell that repeats. infinite
// reports whether a repeat was actually found (a true cdr-cycle) as
// opposed to the chain simply running out at a non-cons tail.
func spine(c *value.Cons) (cells []*value.Cons, infinite bool) {
	seen := map[*value.Cons]bool{}
	p := c
	for p != nil {
		if seen[p] {
			infinite = true
			return
		}
		seen[p] = true
		cells = append(cells, p)
		next, ok := p.Cdr.(*value.Cons)
		if !ok {
			return
		}
		p = next
	}
	return
}

// isCyclical reports whether start's own cdr chain loops back on
// itself.
func isCyclical(start *value.Cons) bool {
	_, infinite := spine(start)
	return infinite
}

// indexInOuter searches nested's car/cdr tree for any cell also
// present in outer, the cross-reference case where a car element
// cycles back into an ancestor spine currently being printed rather
// than into itself. It returns the position of the first such cell
// found, in outer's spine order.
func indexInOuter(nested *value.Cons, outer []*value.Cons) (int, bool) {
	outerIdx := make(map[*value.Cons]int, len(outer))
	for i, p := range outer {
		outerIdx[p] = i
	}
	seen := map[*value.Cons]bool{}
	var walk func(v value.Value) (int, bool)
	walk = func(v value.Value) (int, bool) {
		cc, ok := v.(*value.Cons)
		if !ok {
			return 0, false
		}
		if seen[cc] {
			return 0, false
		}
		seen[cc] = true
		if idx, found := outerIdx[cc]; found {
			return idx, true
		}
		if idx, found := walk(cc.Car); found {
			return idx, true
		}
		return walk(cc.Cdr)
	}
	return walk(nested)
}

// asQuoteForm reports whether c's car is the symbol quote and its cdr
// is a cons, the shape the "'X" print sugar applies to. Matching
// original_source, only the first element after quote is ever printed;
// anything further along is ignored by the sugar.
func asQuoteForm(c *value.Cons) (inner value.Value, ok bool) {
	sym, isSym := c.Car.(*value.Symbol)
	if !isSym || sym.Name() != "quote" {
		return nil, false
	}
	rest, isCons := c.Cdr.(*value.Cons)
	if !isCons {
		return nil, false
	}
	return rest.Car, true
}

// consToString renders c, following original_source/ConsCellObject.cpp's
// toString() exactly: a spine scan to find whether (and where) this
// list's cdr chain cycles, then a second pass over the same spine that
// prints each car in turn and, on completing the loop, closes with a
// dotted "#N" back-reference to the index (in this list's own spine)
// where the cycle re-enters.
func consToString(c *value.Cons) string {
	if inner, ok := asQuoteForm(c); ok {
		return "'" + printInline(inner)
	}

	cellPtrs, infinite := spine(c)
	threshold := 1
	if len(cellPtrs) > 1 {
		threshold = 2
	}

	carToString := func(carVal value.Value) string {
		if nested, ok := carVal.(*value.Cons); ok && isCyclical(nested) {
			if idx, found := indexInOuter(nested, cellPtrs); found {
				return "#" + strconv.Itoa(idx)
			}
		}
		return printInline(carVal)
	}

	var b strings.Builder
	b.WriteString("(")

	visited := map[*value.Cons]int{}
	index := 0
	var loopback *int
	t := c
	for t != nil {
		next, nextIsCons := t.Cdr.(*value.Cons)

		if !nextIsCons && !value.IsNil(t.Cdr) {
			b.WriteString(carToString(t.Car))
			b.WriteString(" . ")
			b.WriteString(printInline(t.Cdr))
			t = nil
			break
		}

		if infinite && nextIsCons && visited[next] == threshold {
			b.WriteString(". ")
			if len(cellPtrs) == 1 {
				zero := 0
				loopback = &zero
			}
			b.WriteString("#" + strconv.Itoa(*loopback))
			t = nil
			break
		}

		if infinite && loopback == nil && nextIsCons && visited[next] > 0 {
			lb := index
			loopback = &lb
		}

		visited[t]++
		index++
		b.WriteString(carToString(t.Car))

		if nextIsCons {
			t = next
			b.WriteString(" ")
		} else {
			t = nil
		}
	}

	b.WriteString(")")
	return b.String()
}

func printInline(v value.Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}
