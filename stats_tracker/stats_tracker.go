package stats_tracker

import (
	"fmt"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/ncmink/biebie-cli/constants/lipgloss"
	"github.com/ncmink/biebie-cli/stats_tracker/contracts"
	"github.com/ncmink/biebie-cli/stats_tracker/models"
)

// StatsTracker implementation
type statsTracker struct {
	discovered     atomic.Int64
	filtered       atomic.Int64
	processed      atomic.Int64
	failed         atomic.Int64
	uniques        atomic.Int64
	duplicates     atomic.Int64
	uniqueBytes    atomic.Int64
	duplicateBytes atomic.Int64
}

// NewStatsTracker creates a new stats tracker
func NewStatsTracker() contracts.IStatsTracker {
	return &statsTracker{}
}

// AddDiscovered accumulates regular files seen during traversal.
func (st *statsTracker) AddDiscovered(count int64) {
	st.discovered.Add(count)
}

// AddFiltered accumulates entries rejected by the inclusion filter.
func (st *statsTracker) AddFiltered(count int64) {
	st.filtered.Add(count)
}

// AddProcessed accumulates successfully fingerprinted files. Schedulers
// call this once per finished batch with the batch's total.
func (st *statsTracker) AddProcessed(count int64) {
	st.processed.Add(count)
}

// AddFailed accumulates entries dropped on I/O errors.
func (st *statsTracker) AddFailed(count int64) {
	st.failed.Add(count)
}

// AddUniques accumulates admitted representatives and their bytes.
func (st *statsTracker) AddUniques(count int64, size int64) {
	st.uniques.Add(count)
	st.uniqueBytes.Add(size)
}

// AddDuplicates accumulates rejected duplicates and their bytes.
func (st *statsTracker) AddDuplicates(count int64, size int64) {
	st.duplicates.Add(count)
	st.duplicateBytes.Add(size)
}

func (st *statsTracker) Snapshot() models.ScanStats {
	return models.ScanStats{
		Discovered:     st.discovered.Load(),
		Filtered:       st.filtered.Load(),
		Processed:      st.processed.Load(),
		Failed:         st.failed.Load(),
		Uniques:        st.uniques.Load(),
		Duplicates:     st.duplicates.Load(),
		UniqueBytes:    st.uniqueBytes.Load(),
		DuplicateBytes: st.duplicateBytes.Load(),
	}
}

func (st *statsTracker) DisplayStats() {
	stats := st.Snapshot()

	statsInfo := fmt.Sprintf(
		"Discovered: %s - Filtered: %s - Failed: %s\nUnique: %s (%s) - Duplicates: %s (%s saved)",
		humanize.Comma(stats.Discovered),
		humanize.Comma(stats.Filtered),
		humanize.Comma(stats.Failed),
		humanize.Comma(stats.Uniques),
		humanize.IBytes(uint64(stats.UniqueBytes)),
		humanize.Comma(stats.Duplicates),
		humanize.IBytes(uint64(stats.DuplicateBytes)),
	)

	statsBox := lipgloss.BoxStyle.Render(statsInfo)
	fmt.Println(statsBox)
}

func (st *statsTracker) ClearStats() {
	st.discovered.Store(0)
	st.filtered.Store(0)
	st.processed.Store(0)
	st.failed.Store(0)
	st.uniques.Store(0)
	st.duplicates.Store(0)
	st.uniqueBytes.Store(0)
	st.duplicateBytes.Store(0)
}
