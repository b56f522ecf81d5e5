// ════════════════════════════════════════════════════════════════════════════════════════════════
// Spinlock Contention Harvester - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: CLI Orchestration
//
// Description:
//   Drives the contention harvester against the spinmutex primitive: loads a trial
//   scenario (JSON file or built-in default), runs every trial with workers pinned to
//   their cores, persists outcomes and spin-latency samples to SQLite, and exits
//   non-zero when any trial fails counter verification.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"flag"
	"log"

	"main/contention"
)

func main() {
	scenarioPath := flag.String("scenario", "", "JSON scenario file (built-in default when empty)")
	dbPath := flag.String("db", "contention.db", "SQLite database for trial results")
	flag.Parse()

	scenario := contention.DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := contention.LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("scenario %s: %v", *scenarioPath, err)
		}
		scenario = loaded
	}

	harvester, err := contention.OpenHarvester(*dbPath)
	if err != nil {
		log.Fatalf("open %s: %v", *dbPath, err)
	}
	defer harvester.Close()

	failed, err := harvester.Run(scenario)
	if err != nil {
		log.Fatalf("scenario %s: %v", scenario.Name, err)
	}
	if failed > 0 {
		log.Fatalf("scenario %s: %d trial(s) failed counter verification", scenario.Name, failed)
	}
	log.Printf("scenario %s: all %d trials verified", scenario.Name, len(scenario.Trials))
}
