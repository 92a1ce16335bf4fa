package file_scanner

import (
	"fmt"
	"github.com/ncmink/biebie-cli/file_scanner/models"
	contracts2 "github.com/ncmink/biebie-cli/stats_tracker/contracts"
	"github.com/shirou/gopsutil/v4/cpu"
	"log"
	"path/filepath"
	"runtime"
	"sync"
)

// minWorkers is the floor for the pool size regardless of hardware.
const minWorkers = 4

// OptimalWorkerCount sizes the pool from the machine's core counts:
// twice the logical cores capped at four times the physical cores, with
// minWorkers as the floor. Detection failures fall back to the
// runtime's view of the CPU.
func OptimalWorkerCount() int {
	logical, err := cpu.Counts(true)
	if err != nil || logical < 1 {
		logical = runtime.NumCPU()
	}
	physical, err := cpu.Counts(false)
	if err != nil || physical < 1 {
		physical = logical
	}

	workers := logical * 2
	if physical*4 < workers {
		workers = physical * 4
	}
	if workers < minWorkers {
		workers = minWorkers
	}
	return workers
}

// BatchScheduler runs directory batches on a bounded pool. Batches and
// the files inside them share the same pool: every batch occupies one
// slot for its whole run, and file-level work grabs extra slots only
// when they are free, falling back to the batch's own goroutine when
// they are not. Neither level can starve the other.
type BatchScheduler struct {
	workers       int
	slots         chan struct{}
	fingerprinter *ContentFingerprinter
	classifier    *FileClassifier
	stats         contracts2.IStatsTracker
}

// NewBatchScheduler initializes a scheduler with the given pool size.
func NewBatchScheduler(workers int, stats contracts2.IStatsTracker) (*BatchScheduler, error) {
	if workers < 1 {
		return nil, fmt.Errorf("worker pool requires at least one worker, got %d", workers)
	}
	return &BatchScheduler{
		workers:       workers,
		slots:         make(chan struct{}, workers),
		fingerprinter: NewContentFingerprinter(),
		classifier:    NewFileClassifier(),
		stats:         stats,
	}, nil
}

// Workers returns the pool size the scheduler was built with.
func (s *BatchScheduler) Workers() int {
	return s.workers
}

// Schedule runs every batch and blocks until all of them have finished.
// Dispatch order follows the slice order; completion order does not.
func (s *BatchScheduler) Schedule(batches []models.DirectoryBatch, registry *DedupRegistry, collector *ResultCollector) {
	var batchWg sync.WaitGroup
	for _, batch := range batches {
		s.slots <- struct{}{}
		batchWg.Add(1)
		go func(batch models.DirectoryBatch) {
			defer batchWg.Done()
			defer func() { <-s.slots }()
			s.runBatch(batch, registry, collector)
		}(batch)
	}
	batchWg.Wait()
}

// runBatch fingerprints the batch's files, deduplicates them against the
// registry and reports the batch's counters in bulk once it is done.
func (s *BatchScheduler) runBatch(batch models.DirectoryBatch, registry *DedupRegistry, collector *ResultCollector) {
	records := make([]models.FileRecord, len(batch.Files))
	succeeded := make([]bool, len(batch.Files))

	var fileWg sync.WaitGroup
	for i, entry := range batch.Files {
		select {
		case s.slots <- struct{}{}:
			fileWg.Add(1)
			go func(i int, entry models.CandidateEntry) {
				defer fileWg.Done()
				defer func() { <-s.slots }()
				succeeded[i] = s.processFile(entry, &records[i])
			}(i, entry)
		default:
			succeeded[i] = s.processFile(entry, &records[i])
		}
	}
	fileWg.Wait()

	var processed, failed, uniques, duplicates int64
	var uniqueBytes, duplicateBytes int64
	admitted := make([]models.FileRecord, 0, len(batch.Files))
	for i := range records {
		if !succeeded[i] {
			failed++
			continue
		}
		processed++
		if won, _ := registry.Admit(records[i].Fingerprint, records[i].Path); won {
			uniques++
			uniqueBytes += records[i].SizeBytes
			admitted = append(admitted, records[i])
		} else {
			duplicates++
			duplicateBytes += records[i].SizeBytes
		}
	}
	collector.Add(admitted)

	s.stats.AddProcessed(processed)
	if failed > 0 {
		s.stats.AddFailed(failed)
	}
	s.stats.AddUniques(uniques, uniqueBytes)
	if duplicates > 0 {
		s.stats.AddDuplicates(duplicates, duplicateBytes)
	}
}

// processFile fingerprints and classifies one file into record. A file
// that cannot be fingerprinted is logged and reported as failed; it
// never aborts the batch.
func (s *BatchScheduler) processFile(entry models.CandidateEntry, record *models.FileRecord) bool {
	fingerprint, err := s.fingerprinter.Fingerprint(entry.Path, entry.Size)
	if err != nil {
		log.Printf("skipping %s: %v", entry.Path, err)
		return false
	}

	contentType := s.classifier.DetectContentType(entry.Path)
	*record = models.FileRecord{
		Path:        entry.Path,
		ParentDir:   filepath.Dir(entry.Path),
		SizeBytes:   entry.Size,
		ContentType: contentType,
		Fingerprint: fingerprint,
		Category:    s.classifier.Classify(contentType),
	}
	return true
}
