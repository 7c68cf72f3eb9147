package stdlib

import (
	"github.com/akuukka/go-alisp/internal/builtin"
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// addSequenceFunctions ports SequenceFunctions.cpp's elt/reverse,
// generalized the same way original_source's own Sequence
// interface generalizes them: list, vector and string all answer to
// indexed access, length and reversal.
func addSequenceFunctions(reg *builtin.Registry) {
	reg.Add(&builtin.Builtin{Name: "elt", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		idx, err := c.Int(1)
		if err != nil {
			return nil, err
		}
		return sequenceElt(c.Arg(0), int(idx))
	}})
	reg.Add(&builtin.Builtin{Name: "aref", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		idx, err := c.Int(1)
		if err != nil {
			return nil, err
		}
		return sequenceElt(c.Arg(0), int(idx))
	}})
	reg.Add(&builtin.Builtin{Name: "aset", MinArgs: 3, MaxArgs: 3, Fn: func(c *builtin.Call) (value.Value, error) {
		vec, err := c.Vector(0)
		if err != nil {
			return nil, err
		}
		idx, err := c.Int(1)
		if err != nil {
			return nil, err
		}
		if idx < 0 || int(idx) >= vec.Len() {
			return nil, lerrors.NewError("Index out of range.")
		}
		v := c.Arg(2)
		vec.Set(int(idx), v)
		return v, nil
	}})
	reg.Add(&builtin.Builtin{Name: "reverse", MinArgs: 1, MaxArgs: 1, Fn: func(c *builtin.Call) (value.Value, error) {
		return sequenceReverse(c.Arg(0))
	}})
}

func sequenceElt(v value.Value, idx int) (value.Value, error) {
	switch {
	case value.IsNil(v), value.IsCons(v):
		elems, ok := value.ToSlice(v)
		if !ok || idx < 0 || idx >= len(elems) {
			return nil, lerrors.NewError("Index out of range.")
		}
		return elems[idx], nil
	case value.IsVector(v):
		vec, _ := value.AsVector(v)
		if idx < 0 || idx >= vec.Len() {
			return nil, lerrors.NewError("Index out of range.")
		}
		return vec.Elems[idx], nil
	case value.IsString(v):
		s, _ := value.AsString(v)
		if idx < 0 || idx >= s.Len() {
			return nil, lerrors.NewError("Index out of range.")
		}
		return value.Character(s.Runes[idx]), nil
	default:
		return nil, lerrors.NewWrongTypeArgument("sequencep", value.Describe(v))
	}
}

func sequenceReverse(v value.Value) (value.Value, error) {
	switch {
	case value.IsNil(v), value.IsCons(v):
		elems, ok := value.ToSlice(v)
		if !ok {
			return nil, lerrors.NewWrongTypeArgument("listp", value.Describe(v))
		}
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			out[len(elems)-1-i] = e
		}
		return value.List(out...), nil
	case value.IsVector(v):
		vec, _ := value.AsVector(v)
		out := make([]value.Value, vec.Len())
		for i, e := range vec.Elems {
			out[len(out)-1-i] = e
		}
		return value.NewVector(out), nil
	case value.IsString(v):
		s, _ := value.AsString(v)
		out := make([]rune, len(s.Runes))
		for i, r := range s.Runes {
			out[len(out)-1-i] = r
		}
		return value.NewString(string(out)), nil
	default:
		return nil, lerrors.NewWrongTypeArgument("sequencep", value.Describe(v))
	}
}
