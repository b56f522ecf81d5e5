// ============================================================================
// HARDWARE SPINLOCK LINE BANK
// ============================================================================
//
// Process-wide bank of hardware-arbitrated lock lines providing the single
// source of cross-core atomicity for the spinmutex layer. Models the silicon
// arbiter found on dual-core parts (32 numbered lock lines, single-winner
// claim resolution) as a fixed array of cache-line isolated lock words.
//
// Core capabilities:
//   - Non-blocking single-shot claim per line (TryClaim)
//   - Unconditional release paired one-to-one with successful claims
//   - Acquire/release ordering across claim/release boundary
//
// Architecture overview:
//   - 32 lock lines, one word per 64-byte cache line
//   - No registration, no ownership tracking, no fairness machinery
//   - Line namespace is global: every user of line N contends on line N
//
// Safety model:
//   - Claim/release atomicity delegated to sync/atomic (the arbiter)
//   - Release of an unclaimed line panics: it means a claim/release pairing
//     bug, which silently corrupts mutual exclusion if allowed through
//   - No software bookkeeping backs exclusion; the lock word is the arbiter

package hwlock

import "sync/atomic"

// ============================================================================
// LINE NAMESPACE
// ============================================================================

const (
	// NumLines is the number of lock lines the bank exposes. Line IDs are
	// valid in [0, NumLines). The range is fixed at build time; an
	// out-of-range ID is a configuration error, not a runtime condition.
	NumLines = 32

	// ReservedLine is conventionally claimed by platform runtime code for
	// its own critical sections. Nothing here enforces the convention —
	// the namespace is global and uncoordinated — but callers picking
	// lines should avoid it.
	ReservedLine = 31
)

const (
	unclaimed = 0
	claimed   = 1
)

// ============================================================================
// BANK LAYOUT
// ============================================================================

// line is one lock word padded out to a full cache line so that two cores
// spinning on different lines never share a cache line.
type line struct {
	word uint32
	_    [60]byte
}

// bank is the process-wide line array. Zero value means every line is
// unclaimed, so the bank is usable from package load with no init step and
// is reachable identically from every execution context by address.
var bank [NumLines]line

// ============================================================================
// CLAIM / RELEASE
// ============================================================================

// TryClaim attempts a single atomic claim of lock line id. It never blocks
// and never retries: one CAS, one arbiter decision. Returns true when the
// calling context now holds the line.
//
// The successful CAS is the acquire boundary: reads performed after a
// successful TryClaim observe every write the previous holder published
// before its Release.
//
//go:nosplit
//go:inline
func TryClaim(id uint32) bool {
	return atomic.CompareAndSwapUint32(&bank[id].word, unclaimed, claimed)
}

// Release frees lock line id, publishing the holder's writes to the next
// claimer (release boundary). Must be called exactly once per successful
// TryClaim, from the context that claimed it.
//
// Releasing a line that is not held panics. That state is unreachable when
// every claim is paired with one release, so hitting it means mutual
// exclusion is already broken upstream.
//
//go:nosplit
//go:inline
func Release(id uint32) {
	if old := atomic.SwapUint32(&bank[id].word, unclaimed); old != claimed {
		panic("hwlock: release of unclaimed line")
	}
}

// Held reports a point-in-time snapshot of line id's claim word. Diagnostic
// only: the answer can be stale by the time the caller looks at it.
//
//go:nosplit
//go:inline
func Held(id uint32) bool {
	return atomic.LoadUint32(&bank[id].word) == claimed
}
