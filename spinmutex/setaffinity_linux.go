// setaffinity_linux.go - Linux CPU affinity via sched_setaffinity(2)

//go:build linux && !tinygo

package spinmutex

import "golang.org/x/sys/unix"

// setAffinity pins the current thread to the specified CPU core. Failures
// (bad core index for this machine, restricted container) are ignored: the
// worker then runs wherever the kernel puts it, which degrades test
// determinism but nothing else.
//
//go:nosplit
func setAffinity(cpu int) {
	if cpu < 0 {
		return
	}
	var set unix.CPUSet
	set.Set(cpu)
	_ = unix.SchedSetaffinity(0, &set)
}
