package file_scanner

import (
	"github.com/ncmink/biebie-cli/file_scanner/contracts"
	"github.com/ncmink/biebie-cli/file_scanner/models"
	contracts2 "github.com/ncmink/biebie-cli/stats_tracker/contracts"
)

// FileScanner wires discovery, scheduling, fingerprinting and
// deduplication into a single scan pass.
type FileScanner struct {
	workers int
	stats   contracts2.IStatsTracker
}

// NewFileScanner initializes a FileScanner sized for this machine.
func NewFileScanner(stats contracts2.IStatsTracker) contracts.IFileScanner {
	return &FileScanner{
		workers: OptimalWorkerCount(),
		stats:   stats,
	}
}

// Workers returns the pool size a Scan call will run on.
func (s *FileScanner) Workers() int {
	return s.workers
}

// Scan walks rootDir and returns the deduplicated inventory. Every call
// builds its own pool, registry and collector, so concurrent scans share
// nothing but the stats tracker.
func (s *FileScanner) Scan(rootDir string) (*models.ScanInventory, error) {
	discoverer := NewDirectoryDiscoverer(s.stats)
	batches := discoverer.Discover(rootDir)

	registry := NewDedupRegistry()
	collector := NewResultCollector()

	scheduler, err := NewBatchScheduler(s.workers, s.stats)
	if err != nil {
		return nil, err
	}
	scheduler.Schedule(batches, registry, collector)

	records := collector.Inventory()
	inventory := &models.ScanInventory{
		Records:    records,
		TotalFiles: len(records),
	}
	for _, record := range records {
		inventory.TotalSize += record.SizeBytes
	}
	return inventory, nil
}
