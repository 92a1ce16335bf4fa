package contracts

import "github.com/ncmink/biebie-cli/stats_tracker/models"

// IStatsTracker accumulates the run counters shared by the discoverer
// and the scan workers. Batch-level totals are reported in single adds
// to keep contention on the shared counters low.
type IStatsTracker interface {
	AddDiscovered(count int64)
	AddFiltered(count int64)
	AddProcessed(count int64)
	AddFailed(count int64)
	AddUniques(count int64, size int64)
	AddDuplicates(count int64, size int64)
	Snapshot() models.ScanStats
	DisplayStats()
	ClearStats()
}
