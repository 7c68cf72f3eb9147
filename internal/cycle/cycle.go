// Package cycle implements the local mark-and-sweep used to reclaim
// reference-counted heap values (cons cells, strings, symbol records)
// that form a cycle no longer reachable from outside the cycle itself.
//
// A plain refcount cannot tell the difference between "two live
// variables share this list" and "this list only survives because it
// points to itself". Release walks the subgraph reachable from the
// handle being dropped, counts how many of the edges into each visited
// node originate from inside that subgraph, and compares that count to
// the node's real refcount. If every visited node's count matches, none
// of them has a referrer outside the subgraph and the whole thing is
// garbage.
package cycle

// Meta is embedded by every shared heap value (cons cell, string,
// symbol record) to carry its refcount and collection marker.
type Meta struct {
	count      int32
	collecting bool
}

// Init sets the initial refcount of a freshly allocated node to one,
// representing the handle its constructor is about to return.
func (m *Meta) Init() { m.count = 1 }

// Count reports the node's current refcount.
func (m *Meta) Count() int32 { return m.count }

// Node is the interface every refcounted heap value implements so the
// cycle manager can traverse and, when warranted, tear it down.
type Node interface {
	// RefMeta returns the node's embedded refcount/marker state.
	RefMeta() *Meta

	// Traverse invokes visit once for each directly held child that is
	// itself a Node (e.g. a cons cell's car and cdr, a symbol record's
	// bound variable). Traverse implementations visit every child; visit
	// has no return value and cannot stop the traversal early.
	Traverse(visit func(Node))

	// ClearLinks wipes the node's own payload fields, releasing whatever
	// they pointed to is the caller's responsibility, not this method's.
	// It is called only once a node has been determined to be garbage.
	ClearLinks()
}

// Retain records a new handle to n. Call it whenever a value is stored
// into a slot that will later be independently released: a cons cell's
// car/cdr, a symbol's variable or function slot, a binding-stack entry.
func Retain(n Node) {
	if n == nil {
		return
	}
	n.RefMeta().count++
}

// Release drops a handle to n, running the algorithm described in the
// package doc comment. It is safe to call on a node already mid
// collection (it is then a no-op, since that node's teardown is already
// in progress higher up the call stack).
func Release(n Node) {
	if n == nil {
		return
	}
	meta := n.RefMeta()
	if meta.collecting {
		return
	}

	if meta.count <= 1 {
		meta.count = 0
		var children []Node
		n.Traverse(func(c Node) { children = append(children, c) })
		n.ClearLinks()
		for _, c := range children {
			Release(c)
		}
		return
	}

	meta.count--
	releaseShared(n)
}

// releaseShared handles the case where n had more than one handle even
// after this drop: n might still be externally reachable, or it might
// be part of a cycle that, as a whole, no longer is.
func releaseShared(n Node) {
	visited := map[Node]bool{}
	edgesIn := map[Node]int32{}
	var order []Node

	var walk func(x Node)
	walk = func(x Node) {
		if visited[x] {
			return
		}
		visited[x] = true
		order = append(order, x)
		x.Traverse(func(child Node) {
			edgesIn[child]++
			walk(child)
		})
	}
	walk(n)

	for _, x := range order {
		if edgesIn[x] != x.RefMeta().count {
			return // still reachable from outside this subgraph
		}
	}

	// Every node in the subgraph is referenced exactly as many times as
	// it is pointed to from within the subgraph: nothing outside holds a
	// handle to any of it. Mark first so nested Release calls triggered
	// while unwinding don't re-enter this subgraph.
	for _, x := range order {
		x.RefMeta().collecting = true
	}
	for _, x := range order {
		x.Traverse(func(child Node) {
			if !visited[child] {
				Release(child)
			}
		})
	}
	for _, x := range order {
		x.ClearLinks()
	}
}
