package value

import "github.com/akuukka/go-alisp/internal/cycle"

// Vector is a fixed-size, 0-indexed reference type supplementing the
// distilled spec's list-only sequences (see SPEC_FULL.md's ORIGINAL
// SOURCE SUPPLEMENT). It participates in length, elt-style indexing,
// and the cycle manager the same way a cons cell does, since an element
// can itself be a self-referential cons.
type Vector struct {
	cycle.Meta
	Elems []Value
}

func (*Vector) Kind() Kind { return VectorKind }

// NewVector allocates a fresh vector holding elems, retaining each.
func NewVector(elems []Value) *Vector {
	v := &Vector{Elems: elems}
	v.Init()
	for _, e := range elems {
		Retain(e)
	}
	return v
}

func (v *Vector) Len() int { return len(v.Elems) }

// Set mutates the element at i, releasing the old value and retaining
// the new one, the same discipline as Cons.SetCar.
func (v *Vector) Set(i int, val Value) {
	old := v.Elems[i]
	v.Elems[i] = val
	Retain(val)
	Release(old)
}

func (v *Vector) RefMeta() *cycle.Meta { return &v.Meta }

func (v *Vector) Traverse(visit func(cycle.Node)) {
	for _, e := range v.Elems {
		if n, ok := e.(shared); ok {
			visit(n)
		}
	}
}

func (v *Vector) ClearLinks() { v.Elems = nil }
