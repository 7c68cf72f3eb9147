package stdlib

import (
	"github.com/akuukka/go-alisp/internal/builtin"
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/symtab"
	"github.com/akuukka/go-alisp/internal/value"
)

// addSymbolFunctions ports Machine.cpp's intern/unintern/intern-soft/
// make-symbol family and symbol-value/boundp/makunbound, the pieces
// needed to exercise §4.D's "symbol identity survives unintern"
// guarantee from user code.
func addSymbolFunctions(reg *builtin.Registry, table *symtab.Table) {
	trueVal := table.Intern("t")

	reg.Add(&builtin.Builtin{Name: "intern", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		name, err := c.String(0)
		if err != nil {
			return nil, err
		}
		return table.Intern(name.String()), nil
	}})
	reg.Add(&builtin.Builtin{Name: "unintern", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		sym, err := c.Sym(0)
		if err != nil {
			return nil, err
		}
		_, existed := table.Lookup(sym.Name())
		table.Unintern(sym.Name())
		if existed {
			return trueVal, nil
		}
		return value.Nil, nil
	}})
	reg.Add(&builtin.Builtin{Name: "intern-soft", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		name, err := c.String(0)
		if err != nil {
			return nil, err
		}
		sym, ok := table.Lookup(name.String())
		if !ok {
			return value.Nil, nil
		}
		return sym, nil
	}})
	reg.Add(&builtin.Builtin{Name: "make-symbol", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		name, err := c.String(0)
		if err != nil {
			return nil, err
		}
		return symtab.Uninterned(name.String()), nil
	}})
	reg.Add(&builtin.Builtin{Name: "symbol-name", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		sym, err := c.Sym(0)
		if err != nil {
			return nil, err
		}
		return value.NewString(sym.Name()), nil
	}})
	reg.Add(&builtin.Builtin{Name: "symbol-value", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		sym, err := c.Sym(0)
		if err != nil {
			return nil, err
		}
		v, ok := table.Resolve(sym)
		if !ok {
			return nil, lerrors.NewVoidVariable(sym.Name())
		}
		return v, nil
	}})
	reg.Add(&builtin.Builtin{Name: "boundp", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		sym, err := c.Sym(0)
		if err != nil {
			return nil, err
		}
		if _, ok := table.Resolve(sym); ok {
			return trueVal, nil
		}
		return value.Nil, nil
	}})
	reg.Add(&builtin.Builtin{Name: "makunbound", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		sym, err := c.Sym(0)
		if err != nil {
			return nil, err
		}
		table.Makunbound(sym)
		return sym, nil
	}})
	reg.Add(&builtin.Builtin{Name: "symbol-plist", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		sym, err := c.Sym(0)
		if err != nil {
			return nil, err
		}
		return sym.Plist, nil
	}})
}
