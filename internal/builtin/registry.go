package builtin

import "github.com/akuukka/go-alisp/internal/value"

// Registry collects Builtins under construction before they are
// installed into a symbol table, mirroring the teacher's own
// Register/Package split (pkg/native/register.go, pkg/math/pkg.go),
// reduced to this interpreter's single flat namespace.
type Registry struct {
	entries []*Builtin
}

// NewRegistry returns an empty Registry ready for Add calls.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add declares one Builtin under construction. It returns the Registry
// so a caller can chain a sequence of declarations (internal/stdlib's
// add* functions call it once per built-in instead).
func (r *Registry) Add(b *Builtin) *Registry {
	r.entries = append(r.entries, b)
	return r
}

// All returns every Builtin declared so far.
func (r *Registry) All() []*Builtin {
	return r.entries
}

// Installer is satisfied by internal/symtab.Table; kept narrow here so
// this package does not need to import symtab.
type Installer interface {
	Intern(name string) *value.Symbol
}

// Install interns each Builtin's name and sets its function slot to a
// native value.Function built from it, so the evaluator's ordinary
// function-call path has no idea a registered built-in isn't a defun.
func (r *Registry) Install(table Installer) {
	for _, b := range r.entries {
		sym := table.Intern(b.Name)
		fn := value.NewNative(b.Name, b.MinArgs, b.MaxArgs, b.AsNative())
		fn.IsMacro = b.IsMacro
		sym.SetFunction(fn)
	}
}
