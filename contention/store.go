// store.go — SQLite persistence for contention trial results.
//
// One database holds two tables:
//   runs    — one row per completed trial (counter outcome + timing)
//   samples — raw per-acquisition spin latencies, capped per worker
//
// Writes go through a single transaction per trial so a crash mid-persist
// never leaves a run row without its samples.

package contention

import (
	"database/sql"
	"time"

	"main/debug"
	"main/utils"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	scenario    TEXT    NOT NULL,
	line        INTEGER NOT NULL,
	iterations  INTEGER NOT NULL,
	final       INTEGER NOT NULL,
	expected    INTEGER NOT NULL,
	verified    INTEGER NOT NULL,
	elapsed_ns  INTEGER NOT NULL,
	started_at  TEXT    NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	run_id   INTEGER NOT NULL REFERENCES runs(id),
	worker   INTEGER NOT NULL,
	seq      INTEGER NOT NULL,
	spin_ns  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS samples_run ON samples(run_id);
`

// Harvester runs scenarios and persists their results.
type Harvester struct {
	db *sql.DB
}

// OpenHarvester opens (creating if needed) the trial database at path and
// ensures the schema exists.
func OpenHarvester(path string) (*Harvester, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Harvester{db: db}, nil
}

// Close releases the database handle.
func (h *Harvester) Close() error { return h.db.Close() }

// Run executes every trial in the scenario in order, persisting each result
// as it completes. The first persistence error aborts the scenario; trial
// verification failures do not (they are recorded and surfaced at the end).
func (h *Harvester) Run(s *Scenario) (failed int, err error) {
	debug.DropMessage("contention", "scenario start: "+s.Name)

	for i := range s.Trials {
		result := RunTrial(s.Trials[i])
		if !result.Verified {
			failed++
			debug.DropU64("contention: UNVERIFIED counter on line", uint64(result.Trial.Line))
		}
		if err := h.persist(s.Name, &result); err != nil {
			debug.DropError("contention: persist failed", err)
			return failed, err
		}
		debug.DropU64("contention: trial done, line", uint64(result.Trial.Line))
	}

	debug.DropMessage("contention", "scenario complete: "+s.Name+
		", trials "+utils.U64ToASCII(uint64(len(s.Trials))))
	return failed, nil
}

func (h *Harvester) persist(scenario string, r *TrialResult) error {
	tx, err := h.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (scenario, line, iterations, final, expected, verified, elapsed_ns, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		scenario, r.Trial.Line, r.Trial.Iterations, r.Final, r.Expected,
		boolToInt(r.Verified), r.ElapsedNs, r.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO samples (run_id, worker, seq, spin_ns) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for w := range r.Workers {
		for seq, spin := range r.Workers[w].Samples {
			if _, err := stmt.Exec(runID, w, seq, spin); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
