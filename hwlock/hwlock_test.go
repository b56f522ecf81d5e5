// ============================================================================
// LOCK LINE BANK VALIDATION SUITE
// ============================================================================
//
// Exercises the arbiter contract the spinmutex layer builds on: single-
// winner claims, release pairing enforcement, and full independence of
// distinct lines. Lines 28-30 are used here to stay clear of the mutex
// suite's allocations.

package hwlock

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestClaimReleaseRoundTrip(t *testing.T) {
	const id = 28

	if !TryClaim(id) {
		t.Fatal("claim of free line failed")
	}
	if !Held(id) {
		t.Fatal("Held reports free while claimed")
	}
	if TryClaim(id) {
		t.Fatal("second claim of held line succeeded")
	}

	Release(id)
	if Held(id) {
		t.Fatal("Held reports claimed after release")
	}
	if !TryClaim(id) {
		t.Fatal("reclaim after release failed")
	}
	Release(id)
}

func TestReleaseOfUnclaimedLinePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("release of unclaimed line did not panic")
		}
	}()
	Release(29)
}

func TestLinesAreIndependent(t *testing.T) {
	if !TryClaim(28) {
		t.Fatal("claim of line 28 failed")
	}
	defer Release(28)

	if !TryClaim(30) {
		t.Fatal("claim of line 30 blocked by claim on line 28")
	}
	Release(30)
}

// TestSingleWinner races many contenders at one line and verifies exactly
// one claim succeeds per release cycle.
func TestSingleWinner(t *testing.T) {
	const (
		id     = 30
		rounds = 2_000
		racers = 8
	)

	var wins uint64
	var wg sync.WaitGroup

	for r := 0; r < rounds; r++ {
		var roundWins uint64
		wg.Add(racers)
		for i := 0; i < racers; i++ {
			go func() {
				defer wg.Done()
				if TryClaim(id) {
					atomic.AddUint64(&roundWins, 1)
				}
			}()
		}
		wg.Wait()

		switch roundWins {
		case 0:
			// Arbiter can refuse everyone only if the line was left
			// claimed, which would be a pairing bug in this test.
			t.Fatalf("round %d: no winner on free line", r)
		case 1:
			wins++
			Release(id)
		default:
			t.Fatalf("round %d: %d simultaneous winners", r, roundWins)
		}
	}

	if wins != rounds {
		t.Fatalf("wins = %d, want %d", wins, rounds)
	}
}

func BenchmarkTryClaimRelease(b *testing.B) {
	const id = 28
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if TryClaim(id) {
			Release(id)
		}
	}
}
