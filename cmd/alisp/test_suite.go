package main

import (
	"fmt"
	"io"
	"math"

	"github.com/akuukka/go-alisp"
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// scenario is one of spec §8's six end-to-end, literal-input/literal-
// output scenarios. check inspects the Evaluate result directly
// (rather than re-parsing a printed string) since two of the six
// assert something other than an exact printed match: an approximate
// float, and an error kind.
type scenario struct {
	name   string
	source string
	check  func(v alisp.Value, err error) error
}

var scenarios = []scenario{
	{
		name:   "cyclic list prints as a back-reference",
		source: `(progn (setq z (list 1 2 3)) (setcdr (cdr (cdr z)) (cdr z)) z)`,
		check:  expectPrinted("(1 2 3 2 . #2)"),
	},
	{
		name:   "self-cyclic list prints as a back-reference",
		source: `(let ((a (list 1))) (setcdr a a))`,
		check:  expectPrinted("(1 . #0)"),
	},
	{
		name:   "make-list shares its fill value across slots",
		source: `(progn (setq l (make-list 3 '(a b))) (eq (car l) (cadr l)))`,
		check:  expectPrinted("t"),
	},
	{
		name:   "let evaluates bindings in the enclosing scope",
		source: `(let ((x 1) (y (+ 1 2))) (+ x y))`,
		check:  expectPrinted("4"),
	},
	{
		name:   "a macro expands once then evaluates once",
		source: `(defmacro inc (v) (list 'setq v (list '1+ v))) (setq x 1) (inc x)`,
		check:  expectPrinted("2"),
	},
	{
		name:   "mixed-type division is float contagious",
		source: `(/ 10 3 3.0)`,
		check:  expectFloatNear(1.11111111, 1e-3),
	},
	{
		name:   "division by zero raises ArithError",
		source: `(/ 1 0)`,
		check:  expectErrorKind(lerrors.KindArithError),
	},
}

// expectPrinted checks that evaluation succeeds and prints exactly want.
func expectPrinted(want string) func(alisp.Value, error) error {
	return func(v alisp.Value, err error) error {
		if err != nil {
			return fmt.Errorf("unexpected error: %v", err)
		}
		got := alisp.Print(v)
		if got != want {
			return fmt.Errorf("printed %q, want %q", got, want)
		}
		return nil
	}
}

// expectFloatNear checks that evaluation succeeds and produces a number
// within tol of want.
func expectFloatNear(want, tol float64) func(alisp.Value, error) error {
	return func(v alisp.Value, err error) error {
		if err != nil {
			return fmt.Errorf("unexpected error: %v", err)
		}
		got, _, numErr := value.AsNumber(v)
		if numErr != nil {
			return fmt.Errorf("result is not a number: %v", value.Describe(v))
		}
		if math.Abs(got-want) > tol {
			return fmt.Errorf("got %v, want within %v of %v", got, tol, want)
		}
		return nil
	}
}

// expectErrorKind checks that evaluation fails with exactly kind.
func expectErrorKind(kind lerrors.Kind) func(alisp.Value, error) error {
	return func(v alisp.Value, err error) error {
		if err == nil {
			return fmt.Errorf("expected %s, evaluation succeeded with %q", kind, alisp.Print(v))
		}
		got, ok := lerrors.KindOf(err)
		if !ok || got != kind {
			return fmt.Errorf("expected %s, got %v", kind, err)
		}
		return nil
	}
}

// runTestSuite runs every scenario against its own fresh Machine and
// reports a PASS/FAIL line for each, returning an error if any failed.
func runTestSuite(out io.Writer) error {
	failures := 0
	for _, s := range scenarios {
		m, err := alisp.New(true)
		if err != nil {
			return err
		}
		v, evalErr := m.Evaluate(s.source)
		if checkErr := s.check(v, evalErr); checkErr != nil {
			failures++
			fmt.Fprintf(out, "FAIL %s: %v\n", s.name, checkErr)
			continue
		}
		fmt.Fprintf(out, "PASS %s\n", s.name)
	}
	if failures > 0 {
		return fmt.Errorf("%d/%d scenarios failed", failures, len(scenarios))
	}
	return nil
}
