package value

import "github.com/akuukka/go-alisp/internal/cycle"

// Cons is a shared (car, cdr) pair. The cdr is either Nil, another
// *Cons (a proper-list continuation), or any other value (a dotted
// pair). Car and Cdr are never a bare Go nil; the empty list is the
// distinct Nil value, never a *Cons.
type Cons struct {
	cycle.Meta
	Car Value
	Cdr Value
}

func (*Cons) Kind() Kind { return ConsKind }

// NewCons allocates a fresh cons cell holding car and cdr, retaining
// both (the new cell is a second owner of whatever handles they were).
func NewCons(car, cdr Value) *Cons {
	c := &Cons{Car: car, Cdr: cdr}
	c.Init()
	Retain(car)
	Retain(cdr)
	return c
}

// SetCar mutates the car slot in place, releasing the old value and
// retaining the new one. This, along with SetCdr, is the only way user
// code can introduce a cycle (spec §4.B).
func (c *Cons) SetCar(v Value) {
	old := c.Car
	c.Car = v
	Retain(v)
	Release(old)
}

// SetCdr mutates the cdr slot in place, releasing the old value and
// retaining the new one.
func (c *Cons) SetCdr(v Value) {
	old := c.Cdr
	c.Cdr = v
	Retain(v)
	Release(old)
}

func (c *Cons) RefMeta() *cycle.Meta { return &c.Meta }

func (c *Cons) Traverse(visit func(cycle.Node)) {
	if n, ok := c.Car.(shared); ok {
		visit(n)
	}
	if n, ok := c.Cdr.(shared); ok {
		visit(n)
	}
}

func (c *Cons) ClearLinks() {
	c.Car = Nil
	c.Cdr = Nil
}

// List builds a proper list from elements, left to right.
func List(elements ...Value) Value {
	var result Value = Nil
	for i := len(elements) - 1; i >= 0; i-- {
		result = NewCons(elements[i], result)
	}
	return result
}

// DottedList builds a list from elements terminated by tail instead of
// Nil.
func DottedList(tail Value, elements ...Value) Value {
	result := tail
	for i := len(elements) - 1; i >= 0; i-- {
		result = NewCons(elements[i], result)
	}
	return result
}

// ToSlice walks a proper, non-cyclical list and returns its elements.
// It reports ok=false if v is not a list, or is cyclical.
func ToSlice(v Value) (elems []Value, ok bool) {
	seen := map[*Cons]bool{}
	for {
		if IsNil(v) {
			return elems, true
		}
		c, isCons := v.(*Cons)
		if !isCons {
			return elems, false // dotted, not a proper list
		}
		if seen[c] {
			return elems, false // cyclical
		}
		seen[c] = true
		elems = append(elems, c.Car)
		v = c.Cdr
	}
}

// Length returns the number of cells in the proper list v. It reports
// an error (via ok=false) for cyclical lists, per invariant 1 of §3 and
// the length operation named in §3 invariant 5.
func Length(v Value) (n int, ok bool) {
	seen := map[*Cons]bool{}
	for {
		if IsNil(v) {
			return n, true
		}
		c, isCons := v.(*Cons)
		if !isCons {
			return n, false
		}
		if seen[c] {
			return n, false
		}
		seen[c] = true
		n++
		v = c.Cdr
	}
}

// IsCyclical reports whether v's spine revisits a cell before reaching
// a non-cons cdr.
func IsCyclical(v Value) bool {
	c, ok := v.(*Cons)
	if !ok {
		return false
	}
	seen := map[*Cons]bool{}
	for {
		if seen[c] {
			return true
		}
		seen[c] = true
		next, ok := c.Cdr.(*Cons)
		if !ok {
			return false
		}
		c = next
	}
}

// Nth returns the i'th element of a list (0-indexed), or Nil if the
// list is shorter than i+1. It does not guard against cyclical lists;
// callers needing termination guarantees should check IsCyclical first.
func Nth(i int, v Value) Value {
	for ; i > 0; i-- {
		c, ok := v.(*Cons)
		if !ok {
			return Nil
		}
		v = c.Cdr
	}
	if c, ok := v.(*Cons); ok {
		return c.Car
	}
	return Nil
}
