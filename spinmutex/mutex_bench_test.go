// ============================================================================
// SPINLOCK MUTEX PERFORMANCE BENCHMARK SUITE
// ============================================================================
//
// Latency measurement for the lock/unlock fast path. The uncontended
// numbers are the ones that matter for sizing critical sections: the
// design assumes hold times of a handful of instructions, so the
// acquisition overhead has to stay in the same order of magnitude.

package spinmutex

import "testing"

func BenchmarkLockUnlockUncontended(b *testing.B) {
	m := New[uint64](24, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := m.Lock()
		*g.Ptr()++
		g.Unlock()
	}
}

func BenchmarkTryLockUncontended(b *testing.B) {
	m := New[uint64](25, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, ok := m.TryLock()
		if !ok {
			b.Fatal("TryLock failed on free line")
		}
		g.Unlock()
	}
}

func BenchmarkWithUncontended(b *testing.B) {
	m := New[uint64](26, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.With(func(v *uint64) { *v++ })
	}
}

func BenchmarkLockUnlockContended(b *testing.B) {
	m := New[uint64](27, 0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := m.Lock()
			*g.Ptr()++
			g.Unlock()
		}
	})
}
