// Package alisp is the Machine facade: the one public entry point an
// external collaborator (the REPL in cmd/alisp, or any other embedder)
// drives, per spec §6. It owns the symbol table and the evaluator and
// wires internal/stdlib's built-in library and bootstrap program into
// them, but contains no evaluator semantics of its own — every rule
// named in spec §4 lives in internal/eval, internal/reader and
// internal/value, not here.
package alisp

import (
	"github.com/akuukka/go-alisp/internal/eval"
	"github.com/akuukka/go-alisp/internal/printer"
	"github.com/akuukka/go-alisp/internal/reader"
	"github.com/akuukka/go-alisp/internal/stdlib"
	"github.com/akuukka/go-alisp/internal/symtab"
	"github.com/akuukka/go-alisp/internal/value"
)

// Print renders v per spec §6's bit-exact printed forms, the
// counterpart callers use to render whatever Evaluate returns (a
// Machine has no notion of a REPL prompt or output stream of its own).
func Print(v Value) string {
	return printer.Print(v)
}

// Value is the runtime representation every Machine method reads or
// returns, re-exported so a caller outside this module never needs to
// import the internal value package directly.
type Value = value.Value

// Machine is one interpreter instance: its own symbol table, binding
// stack and message sink, independent of any other Machine.
type Machine struct {
	table *symtab.Table
	eval  *eval.Evaluator
	sink  *stdlib.MessageSink
}

// New constructs a Machine. If initStd, it registers the built-in
// library (internal/stdlib.Install) and evaluates the embedded
// bootstrap program (internal/stdlib.Bootstrap), exactly as
// Machine::new(init_std) specifies.
func New(initStd bool) (*Machine, error) {
	table := symtab.New()
	m := &Machine{
		table: table,
		eval:  eval.New(table),
	}
	if initStd {
		m.sink = stdlib.Install(table, m.eval)
		if err := stdlib.Bootstrap(m.eval); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Parse reads text as a single form, wrapping multiple top-level forms
// in an implicit progn (internal/reader's rule). It fails with a
// SyntaxError (internal/lerrors) on malformed input.
func (m *Machine) Parse(text string) (Value, error) {
	return reader.ReadAll(text)
}

// Evaluate parses text then evaluates the result against this
// Machine's table, propagating any error from either step.
func (m *Machine) Evaluate(text string) (Value, error) {
	form, err := m.Parse(text)
	if err != nil {
		return nil, err
	}
	return m.eval.Eval(form)
}

// SetVariable installs name as a global bound to v. constant marks the
// symbol so a later set/setq against it fails, the same flag New uses
// internally for nil and t.
func (m *Machine) SetVariable(name string, v Value, constant bool) {
	sym := m.table.Intern(name)
	sym.SetVariable(v)
	sym.Constant = constant
}

// SetMessageHandler rewires the sink the message built-in writes
// through; unset, message writes a line to standard output
// (internal/stdlib.MessageSink's own default). On a Machine built with
// initStd false, message is not registered, so the handler is stored
// but never called.
func (m *Machine) SetMessageHandler(fn func(string)) {
	if m.sink == nil {
		m.sink = &stdlib.MessageSink{}
	}
	m.sink.Handler = fn
}

// Intern returns the table's symbol record for name, creating it on
// first use.
func (m *Machine) Intern(name string) Value {
	return m.table.Intern(name)
}

// Unintern removes name from the table's discovery map; existing
// Values already referencing that record are unaffected (§4.D).
func (m *Machine) Unintern(name string) {
	m.table.Unintern(name)
}
