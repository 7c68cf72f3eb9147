// Package lerrors is the interpreter's error taxonomy: every condition
// the reader or evaluator can signal is one of a small set of typed
// kinds, each implementing the standard error interface so it unwinds
// like any other Go error, but recoverable by kind at the REPL boundary.
package lerrors

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the error taxonomy named in the language core.
type Kind int

const (
	KindSyntaxError Kind = iota
	KindVoidFunction
	KindVoidVariable
	KindWrongNumberOfArguments
	KindWrongTypeArgument
	KindArithError
	KindError
	KindUnableToEvaluate
)

func (k Kind) String() string {
	switch k {
	case KindSyntaxError:
		return "SyntaxError"
	case KindVoidFunction:
		return "VoidFunction"
	case KindVoidVariable:
		return "VoidVariable"
	case KindWrongNumberOfArguments:
		return "WrongNumberOfArguments"
	case KindWrongTypeArgument:
		return "WrongTypeArgument"
	case KindArithError:
		return "ArithError"
	case KindError:
		return "Error"
	case KindUnableToEvaluate:
		return "UnableToEvaluate"
	default:
		return "UnknownError"
	}
}

// LispError is implemented by every kind in this taxonomy.
type LispError interface {
	error
	Kind() Kind
}

// taxonomyError backs every concrete kind below. Its Message carries the
// human-readable detail; Cause, when set, lets callers wrap a lower-level
// Go error (e.g. an I/O failure behind a SyntaxError) without losing it.
type taxonomyError struct {
	kind    Kind
	Message string
	Cause   error
}

func (e *taxonomyError) Kind() Kind { return e.kind }

func (e *taxonomyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

func (e *taxonomyError) Unwrap() error { return e.Cause }

func newf(k Kind, format string, args ...interface{}) *taxonomyError {
	return &taxonomyError{kind: k, Message: fmt.Sprintf(format, args...)}
}

// NewSyntaxError reports a reader-level grammar violation.
func NewSyntaxError(format string, args ...interface{}) error {
	return newf(KindSyntaxError, format, args...)
}

// NewVoidFunction reports a call to a symbol with no function slot.
func NewVoidFunction(name string) error {
	return newf(KindVoidFunction, "Symbol's function definition is void: %s", name)
}

// NewVoidVariable reports evaluation of an unbound symbol.
func NewVoidVariable(name string) error {
	return newf(KindVoidVariable, "Symbol's value as variable is void: %s", name)
}

// NewWrongNumberOfArguments reports an arity mismatch. count is the
// number of arguments that were actually supplied.
func NewWrongNumberOfArguments(name string, count int) error {
	return newf(KindWrongNumberOfArguments, "Wrong number of arguments: %s, %d", name, count)
}

// NewWrongTypeArgument reports a typed-extraction failure; printed is
// the reader-faithful printed form of the offending value.
func NewWrongTypeArgument(predicate, printed string) error {
	return newf(KindWrongTypeArgument, "Wrong type argument: %s, %s", predicate, printed)
}

// NewArithError reports a numeric-evaluation failure (division by zero,
// a non-integer argument to an integer-only operator, and so on).
func NewArithError(format string, args ...interface{}) error {
	return newf(KindArithError, format, args...)
}

// NewError reports a general signaled condition that isn't better
// described by one of the other kinds and carries no tag symbol or
// data list of its own (contrast Signaled, built by the signal
// built-in). Index-out-of-range and similar built-in-raised conditions
// use this.
func NewError(format string, args ...interface{}) error {
	return newf(KindError, format, args...)
}

// NewUnableToEvaluate reports a structural failure that isn't better
// described by one of the other kinds (exceeding the recursion cap,
// a cyclical list passed to an operation that requires termination).
func NewUnableToEvaluate(format string, args ...interface{}) error {
	return newf(KindUnableToEvaluate, format, args...)
}

// Signaled is the Error kind carrying the tag symbol and data list from
// a user (signal sym data) call. Sym and Data are left as interface{}
// (rather than typed on the value package) to avoid an import cycle;
// Error() shows only the pre-rendered message, never Sym or Data.
type Signaled struct {
	taxonomyError
	Sym  interface{}
	Data interface{}
}

// NewSignaled builds the Error kind for (signal sym data). message is
// the already-rendered display text (the signal built-in passes the
// first string in data, else the symbol's name), used verbatim by
// Error().
func NewSignaled(sym, data interface{}, message string) *Signaled {
	return &Signaled{
		taxonomyError: taxonomyError{kind: KindError, Message: message},
		Sym:           sym,
		Data:          data,
	}
}

// Wrap attaches additional call-site context to err without discarding
// its Kind. Nothing in this repository calls it: the evaluator and
// built-ins return their errors unwrapped.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	wrapped := errors.Wrapf(err, format, args...)
	if le, ok := err.(LispError); ok {
		return &taxonomyError{kind: le.Kind(), Message: wrapped.Error(), Cause: err}
	}
	return wrapped
}

// KindOf reports the Kind of err if it is one of this taxonomy's
// errors, and ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var le LispError
	if stderrors.As(err, &le) {
		return le.Kind(), true
	}
	return 0, false
}
