// ════════════════════════════════════════════════════════════════════════════════════════════════
// CPU Relaxation - ARM64 Architecture
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: ARM64 Spin-Wait Optimization
//
// Description:
//   Platform-specific implementation for ARM64 processors using the YIELD instruction.
//   Same contract as the amd64 PAUSE variant: a pipeline hint that the caller is
//   spinning on a lock line, trading a few cycles for lower power and better
//   behavior on multi-core parts (dual-core embedded targets included).
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

//go:build arm64 && !noasm && !nocgo

package spinmutex

/*
#ifdef __aarch64__
static inline void cpu_yield() {
    __asm__ __volatile__("yield" ::: "memory");
}
#else
#error "This file requires ARM64 architecture"
#endif
*/
import "C"

// cpuRelax emits the ARM64 YIELD instruction for efficient spin-wait loops.
//
//go:nosplit
//go:inline
func cpuRelax() {
	C.cpu_yield()
}
