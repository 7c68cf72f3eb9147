package value

// Eq implements the value model's equals(): by-value for numbers and
// characters, by shared identity for strings, cons cells, symbols,
// vectors and functions (invariant 2 of §3). This is the primitive the
// eq built-in and the evaluator's own identity checks (e.g. nth/nth
// returning the same handle twice, per §8 invariant 2) are built on.
func Eq(a, b Value) bool {
	if a.Kind() != b.Kind() {
		// nil is its own kind but must compare eq to the symbol nil;
		// that unification happens in the symbol table layer (a bound
		// "nil" symbol value always resolves to the Nil value itself),
		// so by the time two Values reach here a Kind mismatch is a
		// genuine inequality.
		return false
	}
	switch x := a.(type) {
	case nilValue:
		return true
	case Integer:
		return x == b.(Integer)
	case Float:
		return x == b.(Float)
	case Character:
		return x == b.(Character)
	case *StringObj:
		return x == b.(*StringObj)
	case *Symbol:
		return x == b.(*Symbol)
	case *Cons:
		return x == b.(*Cons)
	case *Function:
		return x == b.(*Function)
	case *Vector:
		return x == b.(*Vector)
	default:
		return false
	}
}

// Equal is a deep, structural equality used by the equal built-in: it
// recurses into cons cells and vectors and compares string content,
// rather than identity. Cyclical lists are guarded against by bounding
// the pairwise walk to each list's own cycle check.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *StringObj:
		return x.String() == b.(*StringObj).String()
	case *Cons:
		return consEqual(x, b.(*Cons))
	case *Vector:
		return vectorEqual(x, b.(*Vector))
	default:
		return Eq(a, b)
	}
}

func consEqual(a, b *Cons) bool {
	seen := map[*Cons]bool{}
	for {
		if seen[a] || seen[b] {
			return a == b
		}
		seen[a] = true
		if !Equal(a.Car, b.Car) {
			return false
		}
		an, aok := a.Cdr.(*Cons)
		bn, bok := b.Cdr.(*Cons)
		if aok != bok {
			return false
		}
		if !aok {
			return Equal(a.Cdr, b.Cdr)
		}
		a, b = an, bn
	}
}

func vectorEqual(a, b *Vector) bool {
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if !Equal(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	return true
}
