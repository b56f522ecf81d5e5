// ════════════════════════════════════════════════════════════════════════════════════════════════
// Lock-Line Contention Harvester
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Dual-Core Contention Trial Runner
//
// Description:
//   Out-of-band measurement tooling for the spinmutex primitive. Runs scripted
//   contention trials — two workers pinned to distinct CPU cores hammering one
//   lock line — while sampling per-acquisition spin latency, then persists the
//   results to SQLite for offline analysis.
//
// Every trial doubles as an invariant check: a protected counter incremented
// N times by each worker must read exactly 2×N afterwards. A mismatch means
// mutual exclusion or the claim/release barrier is broken, and the trial is
// recorded as unverified.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package contention

import (
	"errors"
	"os"
	"time"

	"main/hwlock"
	"main/spinmutex"

	"github.com/sugawarayuuta/sonnet"
)

// workersPerTrial is fixed by the system model: two independent execution
// cores, no more.
const workersPerTrial = 2

// sampleCap bounds how many individual spin-latency samples a worker keeps
// for persistence. Aggregates (count/total/max) still cover every
// acquisition; only the raw series is truncated.
const sampleCap = 1024

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SCENARIO CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Scenario is a JSON-scripted batch of contention trials.
type Scenario struct {
	Name   string  `json:"name"`
	Trials []Trial `json:"trials"`
}

// Trial describes one contention run: which lock line, how many increments
// per worker, and which CPU cores the two workers pin to.
type Trial struct {
	Line       uint32 `json:"line"`
	Iterations uint64 `json:"iterations"`
	Cores      [2]int `json:"cores"`
}

// LoadScenario reads and validates a scenario file. Line numbers are checked
// against the hwlock bank here so a bad scenario fails before any worker
// starts spinning on a line that cannot exist.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := sonnet.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Trials) == 0 {
		return errors.New("contention: scenario has no trials")
	}
	for i := range s.Trials {
		t := &s.Trials[i]
		if t.Line >= hwlock.NumLines {
			return errors.New("contention: trial lock line out of range")
		}
		if t.Iterations == 0 {
			return errors.New("contention: trial iteration count is zero")
		}
	}
	return nil
}

// DefaultScenario is the built-in smoke scenario: the canonical two-cores-
// on-line-7 workload at a size that produces real contention, plus one
// trial on a distinct line to exercise line independence.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name: "default",
		Trials: []Trial{
			{Line: 7, Iterations: 100_000, Cores: [2]int{0, 1}},
			{Line: 12, Iterations: 100_000, Cores: [2]int{0, 1}},
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TRIAL EXECUTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// WorkerStats aggregates one worker's acquisition behavior over a trial.
// Samples holds the first sampleCap raw spin latencies; the aggregate
// fields cover every acquisition.
type WorkerStats struct {
	Acquisitions uint64
	TotalSpinNs  uint64
	MaxSpinNs    uint64
	Samples      []int64
}

// TrialResult is everything a completed trial produced.
type TrialResult struct {
	Trial     Trial
	Final     uint64
	Expected  uint64
	Verified  bool
	ElapsedNs int64
	Workers   [workersPerTrial]WorkerStats
	StartedAt time.Time
}

// RunTrial executes one contention trial to completion. Both workers run
// pinned, each incrementing the shared counter Iterations times under the
// lock; the caller blocks until both finish.
func RunTrial(t Trial) TrialResult {
	mutex := spinmutex.New[uint64](t.Line, 0)

	result := TrialResult{
		Trial:     t,
		Expected:  workersPerTrial * t.Iterations,
		StartedAt: time.Now(),
	}

	var done [workersPerTrial]chan struct{}
	start := time.Now()

	for w := 0; w < workersPerTrial; w++ {
		done[w] = make(chan struct{})
		stats := &result.Workers[w]
		stats.Samples = make([]int64, 0, sampleCap)

		spinmutex.PinnedWorker(t.Cores[w], func() {
			for i := uint64(0); i < t.Iterations; i++ {
				began := time.Now()
				g := mutex.Lock()
				spin := time.Since(began).Nanoseconds()

				*g.Ptr()++
				g.Unlock()

				// Each worker writes only its own stats block; no
				// synchronization needed until the done channel closes.
				stats.Acquisitions++
				stats.TotalSpinNs += uint64(spin)
				if uint64(spin) > stats.MaxSpinNs {
					stats.MaxSpinNs = uint64(spin)
				}
				if len(stats.Samples) < sampleCap {
					stats.Samples = append(stats.Samples, spin)
				}
			}
		}, done[w])
	}

	for w := 0; w < workersPerTrial; w++ {
		<-done[w]
	}
	result.ElapsedNs = time.Since(start).Nanoseconds()

	g := mutex.Lock()
	result.Final = g.Get()
	g.Unlock()
	result.Verified = result.Final == result.Expected

	return result
}
