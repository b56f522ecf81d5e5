// ════════════════════════════════════════════════════════════════════════════════════════════════
// CPU Relaxation - Fallback Implementation
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Cross-Platform Compatibility Layer
//
// Description:
//   Fallback for architectures without a dedicated spin-wait hint instruction, and for
//   builds with assembly (noasm) or CGO (nocgo) disabled. The spin loop then runs at
//   full speed with no pipeline hint, which is correct, just less polite.
//
// Dedicated implementations:
//   - amd64: PAUSE instruction (relax_amd64.go)
//   - arm64: YIELD instruction (relax_arm64.go)
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

//go:build (!amd64 && !arm64) || noasm || nocgo || !cgo

package spinmutex

// cpuRelax is a no-op here; the empty body inlines to nothing, keeping the
// same API across all architectures at zero cost.
//
//go:nosplit
//go:inline
func cpuRelax() {}
