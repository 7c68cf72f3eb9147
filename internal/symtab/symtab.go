// Package symtab is the interned symbol table and the dynamic binding
// stack the evaluator consults for variable and function resolution
// (spec §4.D). Every Table owns the name -> *value.Symbol map; the
// BindingStack that rides alongside it realizes deep (dynamic) scoping:
// a free variable resolves to whichever binding is topmost at the
// moment of evaluation, not at the moment the enclosing function was
// defined.
package symtab

import (
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// Table is the unique owner of symbol records (invariant 3 of §3).
type Table struct {
	symbols map[string]*value.Symbol
	stack   *BindingStack
}

// New constructs a Table with its nil and t constants pre-interned and
// a fresh, empty binding stack.
func New() *Table {
	t := &Table{
		symbols: map[string]*value.Symbol{},
		stack:   newBindingStack(),
	}
	nilSym := t.Intern("nil")
	nilSym.Constant = true
	nilSym.SetVariable(value.Nil)

	tSym := t.Intern("t")
	tSym.Constant = true
	tSym.SetVariable(tSym)

	return t
}

// Stack returns the table's binding stack.
func (t *Table) Stack() *BindingStack { return t.stack }

// Intern returns the interned symbol for name, creating its record on
// first call.
func (t *Table) Intern(name string) *value.Symbol {
	if s, ok := t.symbols[name]; ok {
		return s
	}
	s := value.NewSymbol(name)
	s.Interned = true
	t.symbols[name] = s
	return s
}

// Lookup reports the interned symbol for name without creating one.
func (t *Table) Lookup(name string) (*value.Symbol, bool) {
	s, ok := t.symbols[name]
	return s, ok
}

// Unintern removes name's entry from the discovery map. Existing value
// handles that already reference the record (and the record's own
// variable/function/plist slots) are untouched: the record simply
// becomes unreachable by name, exactly as §4.D specifies.
func (t *Table) Unintern(name string) {
	delete(t.symbols, name)
}

// Uninterned builds a fresh, never-interned symbol reference, as the
// reader does for a bare name it hasn't yet resolved against the table
// (§4.C rule 4) and as the make-symbol built-in does.
func Uninterned(name string) *value.Symbol {
	return value.NewSymbol(name)
}

// Resolve looks up the current dynamic value of an interned symbol:
// the top of its binding-stack entry if one is pushed, otherwise its
// own global variable slot.
func (t *Table) Resolve(sym *value.Symbol) (value.Value, bool) {
	if v, ok := t.stack.current(sym.Name()); ok {
		return v, v != nil
	}
	return sym.Variable()
}

// Set assigns v to sym: into the topmost binding-stack frame if one is
// active for its name, otherwise into the symbol's own global slot. It
// fails if the symbol is constant.
func (t *Table) Set(sym *value.Symbol, v value.Value) error {
	if sym.Constant {
		return lerrors.NewError("setting-constant: %s", sym.Name())
	}
	if t.stack.setCurrent(sym.Name(), v) {
		return nil
	}
	sym.SetVariable(v)
	return nil
}

// Makunbound clears sym's current dynamic slot: the topmost
// binding-stack frame if active, otherwise its global variable.
func (t *Table) Makunbound(sym *value.Symbol) {
	if t.stack.clearCurrent(sym.Name()) {
		return
	}
	sym.Makunbound()
}
