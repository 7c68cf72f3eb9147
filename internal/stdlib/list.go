package stdlib

import (
	"github.com/akuukka/go-alisp/internal/builtin"
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// carOrNil / cdrOrNil accept nil in addition to a cons cell, matching
// ListFunctions.cpp's `cc.car ? cc.car->clone() : makeNil()`: nil's car
// and cdr are themselves nil rather than an error.
func carOrNil(v value.Value) (value.Value, error) {
	if value.IsNil(v) {
		return value.Nil, nil
	}
	c, err := value.AsCons(v)
	if err != nil {
		return nil, err
	}
	return c.Car, nil
}

func cdrOrNil(v value.Value) (value.Value, error) {
	if value.IsNil(v) {
		return value.Nil, nil
	}
	c, err := value.AsCons(v)
	if err != nil {
		return nil, err
	}
	return c.Cdr, nil
}

func addListFunctions(reg *builtin.Registry, trueVal value.Value) {
	reg.Add(&builtin.Builtin{Name: "car", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		return carOrNil(c.Arg(0))
	}})
	reg.Add(&builtin.Builtin{Name: "cdr", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		return cdrOrNil(c.Arg(0))
	}})
	reg.Add(&builtin.Builtin{Name: "setcar", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		cell, err := c.Cons(0)
		if err != nil {
			return nil, err
		}
		v := c.Arg(1)
		cell.SetCar(v)
		return v, nil
	}})
	reg.Add(&builtin.Builtin{Name: "setcdr", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		cell, err := c.Cons(0)
		if err != nil {
			return nil, err
		}
		v := c.Arg(1)
		cell.SetCdr(v)
		return v, nil
	}})
	reg.Add(&builtin.Builtin{Name: "cons", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		return value.NewCons(c.Arg(0), c.Arg(1)), nil
	}})
	reg.Add(&builtin.Builtin{Name: "list", MinArgs: 0, MaxArgs: -1, Fn: func(c *builtin.Call) (value.Value, error) {
		elems := make([]value.Value, c.Len())
		for i := range elems {
			elems[i] = c.Arg(i)
		}
		return value.List(elems...), nil
	}})
	// make-list shares the same clone of its fill value across every
	// slot (value.Clone just retains shared storage), which is why two
	// elements of a freshly made list are eq to each other
	// (ListFunctions.cpp's make-list does the same via clone()).
	reg.Add(&builtin.Builtin{Name: "make-list", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		n, err := c.Int(0)
		if err != nil {
			return nil, err
		}
		fill := c.Arg(1)
		elems := make([]value.Value, n)
		for i := range elems {
			elems[i] = value.Clone(fill)
		}
		return value.List(elems...), nil
	}})
	reg.Add(&builtin.Builtin{Name: "nth", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		n, err := c.Int(0)
		if err != nil {
			return nil, err
		}
		return value.Nth(int(n), c.Arg(1)), nil
	}})
	reg.Add(&builtin.Builtin{Name: "nthcdr", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		n, err := c.Int(0)
		if err != nil {
			return nil, err
		}
		v := c.Arg(1)
		for ; n > 0 && value.IsCons(v); n-- {
			v = v.(*value.Cons).Cdr
		}
		return v, nil
	}})
	reg.Add(&builtin.Builtin{Name: "length", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		return sequenceLength(c.Arg(0))
	}})
	reg.Add(&builtin.Builtin{Name: "proper-list-p", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		n, ok := value.Length(c.Arg(0))
		if !ok {
			return value.Nil, nil
		}
		return value.Integer(n), nil
	}})
}

// sequenceLength handles the three sequence kinds §3/SPEC_FULL.md's
// Sequence supplement covers: proper lists, vectors, and strings.
// Cyclical lists fail per invariant 1 of §3 rather than looping.
func sequenceLength(v value.Value) (value.Value, error) {
	switch {
	case value.IsNil(v), value.IsCons(v):
		n, ok := value.Length(v)
		if !ok {
			return nil, lerrors.NewUnableToEvaluate("length: cyclical list")
		}
		return value.Integer(n), nil
	case value.IsVector(v):
		vec, _ := value.AsVector(v)
		return value.Integer(vec.Len()), nil
	case value.IsString(v):
		s, _ := value.AsString(v)
		return value.Integer(s.Len()), nil
	default:
		return nil, lerrors.NewWrongTypeArgument("sequencep", value.Describe(v))
	}
}
