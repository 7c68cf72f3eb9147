package symtab

import "github.com/akuukka/go-alisp/internal/value"

// BindingStack realizes dynamic scoping: a map from name to a stack of
// currently-active bindings. Entering a let, let*, or user-defined
// function call pushes a fresh binding per bound name; exiting pops it,
// on every exit path, normal or via an unwinding error (§5, §7).
//
// A nil stored value.Value (the bare Go nil, never value.Nil) marks a
// frame that exists but is currently unbound, the dynamic-extent
// analogue of a symbol record with no variable slot.
type BindingStack struct {
	entries map[string][]value.Value
}

func newBindingStack() *BindingStack {
	return &BindingStack{entries: map[string][]value.Value{}}
}

// Push installs a new, topmost binding for name, shadowing whatever was
// visible before for the dynamic extent until the matching Pop.
func (b *BindingStack) Push(name string, v value.Value) {
	value.Retain(v)
	b.entries[name] = append(b.entries[name], v)
}

// Pop removes the topmost binding for name. Callers must pair every
// Push with exactly one Pop, on every exit path.
func (b *BindingStack) Pop(name string) {
	stack := b.entries[name]
	top := stack[len(stack)-1]
	if top != nil {
		value.Release(top)
	}
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(b.entries, name)
	} else {
		b.entries[name] = stack
	}
}

// Depth reports the number of active bindings for name, used by tests
// asserting binding-stack balance (§8 invariant 5).
func (b *BindingStack) Depth(name string) int {
	return len(b.entries[name])
}

func (b *BindingStack) current(name string) (value.Value, bool) {
	stack, ok := b.entries[name]
	if !ok || len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1], true
}

func (b *BindingStack) setCurrent(name string, v value.Value) bool {
	stack, ok := b.entries[name]
	if !ok || len(stack) == 0 {
		return false
	}
	old := stack[len(stack)-1]
	value.Retain(v)
	stack[len(stack)-1] = v
	if old != nil {
		value.Release(old)
	}
	return true
}

func (b *BindingStack) clearCurrent(name string) bool {
	stack, ok := b.entries[name]
	if !ok || len(stack) == 0 {
		return false
	}
	old := stack[len(stack)-1]
	stack[len(stack)-1] = nil
	if old != nil {
		value.Release(old)
	}
	return true
}
