// ════════════════════════════════════════════════════════════════════════════════════════════════
// CPU Relaxation - AMD64 Architecture
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: x86-64 Spin-Wait Optimization
//
// Description:
//   Platform-specific implementation for x86-64 processors using the PAUSE instruction.
//   Keeps the claim-retry loop cheap for the rest of the core: less power, less memory
//   ordering speculation, and a fair shake for a sibling hyperthread while we spin on
//   a lock line the other core holds.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

//go:build amd64 && !noasm && !nocgo

package spinmutex

/*
#ifdef __x86_64__
static inline void cpu_pause() {
    __asm__ __volatile__("pause" ::: "memory");
}
#else
#error "This file requires x86-64 architecture"
#endif
*/
import "C"

// cpuRelax emits the x86-64 PAUSE instruction, hinting to the pipeline that
// the caller is in a busy-wait loop. Typical delay is 10-140 cycles
// depending on processor generation — long enough to take pressure off the
// lock word's cache line, short enough not to stretch acquisition latency.
//
//go:nosplit
//go:inline
func cpuRelax() {
	C.cpu_pause()
}
