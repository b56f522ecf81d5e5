// setaffinity_stub.go - CPU affinity no-op for platforms without
// sched_setaffinity(2): macOS, Windows, the BSDs, TinyGo and WASM builds.
// Keeps the API surface identical so higher layers need no conditional
// compilation; workers simply run unpinned.

//go:build !linux || tinygo

package spinmutex

// setAffinity is a no-op on unsupported platforms.
//
//go:nosplit
//go:inline
func setAffinity(cpu int) {}
