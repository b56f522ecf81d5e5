// guard.go — scoped ownership handle for a held lock line.
//
// A Guard is the only path to the protected value. It is deliberately a
// plain value (no allocation on the lock path) with pointer-receiver
// methods; treat it like any other lock-shaped handle:
//
//	g := m.Lock()
//	defer g.Unlock()
//	g.Set(g.Get() + 1)
//
// A Guard must stay on the execution context that acquired it — claim and
// release have to be paired on one context for the barrier semantics to
// hold — and must never outlive its scope: a leaked guard starves every
// acquirer of the line, on both cores, forever.

package spinmutex

import "main/hwlock"

// Guard represents "the bound line is currently held by me" and carries
// the obligation to release it exactly once. Do not copy a live guard:
// both copies would believe they hold the line, and the second Unlock
// panics at the hwlock layer.
type Guard[T any] struct {
	data *T
	line uint32
	held bool
}

// Get returns a copy of the protected value.
//
//go:inline
func (g *Guard[T]) Get() T { return *g.data }

// Set overwrites the protected value.
//
//go:inline
func (g *Guard[T]) Set(v T) { *g.data = v }

// Ptr returns the protected value in place, for read-modify-write without
// copying T. The pointer is valid only until Unlock; stashing it past the
// guard's lifetime reintroduces exactly the unsynchronized access this
// package exists to prevent.
//
//go:inline
func (g *Guard[T]) Ptr() *T { return g.data }

// Unlock releases the bound line, publishing every write made through the
// guard to the next claimer. Exactly once per guard: a second Unlock, or
// an Unlock of a guard TryLock never armed, panics.
//
//go:nosplit
func (g *Guard[T]) Unlock() {
	if !g.held {
		panic("spinmutex: unlock of guard not holding its line")
	}
	g.held = false
	hwlock.Release(g.line)
}
