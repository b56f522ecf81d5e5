// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostic logging (zero-alloc)
//
// Purpose:
//   - Logs infrequent error and state-change paths without heap pressure.
//   - Used by the contention harvester: database errors, scenario problems,
//     trial lifecycle messages.
//
// Notes:
//   - Avoids fmt entirely; messages are built by concatenation and written
//     straight to stderr via utils.PrintWarning.
//
// ⚠️ Never invoke in spin loops — failure diagnostics and trial boundaries only.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "main/utils"

// DropError logs prefix, and err when non-nil, with no formatting machinery.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs a prefix/message pair for cold-path state changes.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}

// DropU64 logs a prefix with a decimal value — trial counts, sample totals.
//
//go:nosplit
//go:inline
func DropU64(prefix string, v uint64) {
	utils.PrintWarning(prefix + ": " + utils.U64ToASCII(v) + "\n")
}
