// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ CORE-PINNED WORKER LAUNCH
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Dedicated Core Execution
//
// Description:
//   Launches a function on a goroutine locked to an OS thread and pinned to a specific
//   CPU core. This is the launch half of the dual-core model: the mutex itself never
//   cares which core calls it, but tests and the contention harvester need "core 0 does
//   this while core 1 does that" to be literally true, not scheduler-approximate.
//
// Threading model:
//   - LockOSThread keeps the goroutine on one thread for its whole life
//   - setAffinity binds that thread to the requested core where the platform allows
//   - On platforms without affinity support the worker still runs, just unpinned
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package spinmutex

import "runtime"

// PinnedWorker runs fn on a goroutine bound to CPU core `core`, closing
// done when fn returns. fn owns the core for its duration; anything it
// acquires it must release before returning — a worker that exits holding
// a line leaves that line claimed forever.
//
//go:inline
func PinnedWorker(core int, fn func(), done chan<- struct{}) {
	go func() {
		runtime.LockOSThread()
		setAffinity(core)

		defer func() {
			runtime.UnlockOSThread()
			close(done)
		}()

		fn()
	}()
}
