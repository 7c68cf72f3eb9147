package value

import "github.com/akuukka/go-alisp/internal/cycle"

// Symbol is both the table's record and the value a symbol reference
// denotes: an interned symbol value is a handle to the record the
// table owns; an uninterned symbol value is a handle to a record that
// was never (or no longer is) discoverable by name.
//
// Unintern removes a record from the table's name map but must not
// invalidate value handles that already point to it (§4.D); because Go
// already tracks reachability for us, this falls out for free: the
// table's map entry is just one more strong reference, and deleting it
// leaves every other holder's pointer exactly as valid as before.
type Symbol struct {
	cycle.Meta

	name     string
	Interned bool
	Constant bool

	// variable is nil (the Go nil interface, not value.Nil) when the
	// symbol is void; bound is tracked by that distinction, not by a
	// separate flag.
	variable Value
	function *Function
	Plist    Value
}

func (*Symbol) Kind() Kind { return SymbolKind }

// NewSymbol allocates a fresh symbol record. Interning it into a table
// is the table's responsibility (see internal/symtab).
func NewSymbol(name string) *Symbol {
	s := &Symbol{name: name, Plist: Nil}
	s.Init()
	return s
}

func (s *Symbol) Name() string { return s.name }

// Bound reports whether the symbol currently has a variable value.
func (s *Symbol) Bound() bool { return s.variable != nil }

// Variable returns the symbol's current value and whether it is bound.
func (s *Symbol) Variable() (Value, bool) {
	if s.variable == nil {
		return nil, false
	}
	return s.variable, true
}

// SetVariable stores v as the symbol's value, retaining it and
// releasing whatever was previously stored. It does not check
// Constant; callers that must honor constancy (the set/setq special
// forms) check it themselves so they can report setting-constant.
func (s *Symbol) SetVariable(v Value) {
	old := s.variable
	s.variable = v
	Retain(v)
	if old != nil {
		Release(old)
	}
}

// Makunbound clears the symbol's variable slot, releasing the value it
// held.
func (s *Symbol) Makunbound() {
	old := s.variable
	s.variable = nil
	if old != nil {
		Release(old)
	}
}

func (s *Symbol) Function() *Function { return s.function }

func (s *Symbol) SetFunction(f *Function) {
	old := s.function
	s.function = f
	if f != nil {
		cycle.Retain(f)
	}
	if old != nil {
		cycle.Release(old)
	}
}

func (s *Symbol) RefMeta() *cycle.Meta { return &s.Meta }

func (s *Symbol) Traverse(visit func(cycle.Node)) {
	if n, ok := s.variable.(shared); ok {
		visit(n)
	}
	if s.function != nil {
		visit(s.function)
	}
	if n, ok := s.Plist.(shared); ok {
		visit(n)
	}
}

func (s *Symbol) ClearLinks() {
	s.variable = nil
	s.function = nil
	s.Plist = Nil
}
