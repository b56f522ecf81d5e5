// ============================================================================
// HARDWARE-ARBITRATED SPINLOCK MUTEX
// ============================================================================
//
// Mutual exclusion between two independent execution cores, built on the
// hwlock line bank as the sole source of cross-core atomicity. One mutex
// binds one protected value to one lock line; the line's claim/release is
// both the exclusion mechanism and the memory barrier that publishes the
// protected value from one holder to the next.
//
// Core capabilities:
//   - Blocking busy-wait acquisition (Lock) with CPU relaxation hints
//   - Non-blocking acquisition (TryLock) as a distinct entry point
//   - Scoped access (With) releasing on every exit path, panics included
//   - Guard handle giving exclusive read/write access to the value
//
// Architecture overview:
//   - Line ID fixed at construction and never reassignable: two mutexes
//     built on the same line are the same lock by construction, two
//     mutexes on different lines never interact
//   - No heap traffic on the lock/unlock path, no scheduler involvement,
//     no timeouts, no fairness promise beyond the arbiter's
//   - Constructible as a package-level var with zero runtime init, so the
//     same address serves every execution context
//
// Safety model:
//   - At most one live Guard per line at any instant, enforced by the
//     line's atomicity, not software bookkeeping
//   - Reacquiring a line already held by the calling context deadlocks:
//     there is no recursion support, spinning forever is the defined
//     outcome (this extends to interrupt-style reentrancy)
//   - A leaked guard permanently starves every acquirer of its line; no
//     watchdog or deadlock detector exists at this layer

package spinmutex

import "main/hwlock"

// spinBudget is the number of failed claim attempts between CPU relaxation
// hints while spinning. Tight enough to keep acquisition latency flat,
// loose enough to keep a contended sibling hyperthread breathing.
const spinBudget = 224

// noCopy trips go vet's copylocks check on accidental value copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ============================================================================
// MUTEX
// ============================================================================

// Mutex binds one value of type T to one hwlock line. The line is fixed at
// construction: it is identity, not configuration. All access to the value
// flows through a Guard; there is no raw escape hatch.
//
// The zero Mutex guards line 0 around T's zero value and is usable, but
// constructing through New is preferred since it range-checks the line.
type Mutex[T any] struct {
	noCopy noCopy
	line   uint32
	data   T
}

// New builds a mutex over initial, bound to lock line id. Pure: it never
// touches the hardware bank. Panics when id is outside [0, hwlock.NumLines);
// for the intended package-level-var usage that turns a bad line number
// into a load-time failure instead of a runtime hang.
func New[T any](id uint32, initial T) *Mutex[T] {
	if id >= hwlock.NumLines {
		panic("spinmutex: lock line out of range")
	}
	return &Mutex[T]{line: id, data: initial}
}

// Line returns the lock line this mutex is bound to.
//
//go:inline
func (m *Mutex[T]) Line() uint32 { return m.line }

// Lock claims the bound line, busy-waiting until it succeeds, and returns
// a guard over the protected value. The calling context spins: no sleep,
// no scheduler yield, no timeout. Expected hold times are a handful of
// instructions, so spinning is cheaper than any blocking primitive and
// needs no scheduler at all.
//
// Deadlock: calling Lock while the calling context already holds the line
// spins forever. So does locking after a guard was leaked without Unlock.
// Neither is detected.
//
//go:nosplit
func (m *Mutex[T]) Lock() Guard[T] {
	var miss int
	for !hwlock.TryClaim(m.line) {
		if miss++; miss >= spinBudget {
			miss = 0
			cpuRelax()
		}
	}
	return Guard[T]{data: &m.data, line: m.line, held: true}
}

// TryLock attempts a single claim of the bound line. One arbiter decision,
// no retry: ok reports whether the returned guard is live. The guard from
// a failed TryLock is inert; unlocking it panics.
//
//go:nosplit
func (m *Mutex[T]) TryLock() (Guard[T], bool) {
	if !hwlock.TryClaim(m.line) {
		return Guard[T]{}, false
	}
	return Guard[T]{data: &m.data, line: m.line, held: true}, true
}

// With runs fn with exclusive access to the protected value, releasing the
// line on every exit path out of fn, panics included. This is the scoped
// form of Lock for callers that want release guaranteed structurally
// rather than by a remembered defer.
func (m *Mutex[T]) With(fn func(*T)) {
	g := m.Lock()
	defer g.Unlock()
	fn(g.data)
}
