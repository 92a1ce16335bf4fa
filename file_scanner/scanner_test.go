package file_scanner

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/ncmink/biebie-cli/file_scanner/models"
	"github.com/ncmink/biebie-cli/stats_tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test a full scan over a small tree with duplicates and a filtered file
func TestFileScanner_ScanDeduplicates(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "scanner_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	content := bytes.Repeat([]byte("duplicate payload "), 112) // 2016 bytes
	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "a.txt"), content, 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "b.txt"), content, 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "c.jpg"), make([]byte, 50), 0644))

	stats := stats_tracker.NewStatsTracker()
	scanner := NewFileScanner(stats)

	inventory, err := scanner.Scan(tempDir)
	require.NoError(t, err)

	// a.txt and b.txt collapse into one record; c.jpg is under the size floor
	require.Len(t, inventory.Records, 1)
	assert.Equal(t, 1, inventory.TotalFiles)
	assert.Equal(t, int64(len(content)), inventory.TotalSize)
	assert.Equal(t, tempDir, inventory.Records[0].ParentDir)
	assert.Equal(t, models.CategoryOther, inventory.Records[0].Category)
	assert.NotEmpty(t, inventory.Records[0].Fingerprint)

	snapshot := stats.Snapshot()
	assert.Equal(t, int64(3), snapshot.Discovered)
	assert.Equal(t, int64(1), snapshot.Filtered)
	assert.Equal(t, int64(2), snapshot.Processed)
	assert.Equal(t, int64(1), snapshot.Uniques)
	assert.Equal(t, int64(1), snapshot.Duplicates)
	assert.Equal(t, int64(len(content)), snapshot.UniqueBytes)
	assert.Equal(t, int64(len(content)), snapshot.DuplicateBytes)
}

// Test that the inventory is ordered by path ascending
func TestFileScanner_ScanOrdersByPath(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "scanner_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	subDir := filepath.Join(tempDir, "nested")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "zebra.txt"), bytes.Repeat([]byte("z"), 2048), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "alpha.txt"), bytes.Repeat([]byte("a"), 2048), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(subDir, "middle.txt"), bytes.Repeat([]byte("m"), 2048), 0644))

	scanner := NewFileScanner(stats_tracker.NewStatsTracker())
	inventory, err := scanner.Scan(tempDir)
	require.NoError(t, err)

	require.Len(t, inventory.Records, 3)
	paths := make([]string, 0, len(inventory.Records))
	for _, record := range inventory.Records {
		paths = append(paths, record.Path)
	}
	assert.True(t, sort.StringsAreSorted(paths))
}

// Test that repeated scans agree on fingerprints and sizes
func TestFileScanner_ScanStableAcrossRuns(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "scanner_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	subDir := filepath.Join(tempDir, "nested")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	shared := bytes.Repeat([]byte("shared "), 300) // 2100 bytes
	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "one.txt"), shared, 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(subDir, "two.txt"), shared, 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(subDir, "three.txt"), bytes.Repeat([]byte("three "), 400), 0644))

	firstScan, err := NewFileScanner(stats_tracker.NewStatsTracker()).Scan(tempDir)
	require.NoError(t, err)
	secondScan, err := NewFileScanner(stats_tracker.NewStatsTracker()).Scan(tempDir)
	require.NoError(t, err)

	// Which duplicate wins may differ between runs, the identities may not
	firstFingerprints := make([]string, 0, len(firstScan.Records))
	for _, record := range firstScan.Records {
		firstFingerprints = append(firstFingerprints, record.Fingerprint)
	}
	secondFingerprints := make([]string, 0, len(secondScan.Records))
	for _, record := range secondScan.Records {
		secondFingerprints = append(secondFingerprints, record.Fingerprint)
	}
	assert.ElementsMatch(t, firstFingerprints, secondFingerprints)
	assert.Equal(t, firstScan.TotalFiles, secondScan.TotalFiles)
	assert.Equal(t, firstScan.TotalSize, secondScan.TotalSize)
}

// Test that an empty root produces an empty inventory, not an error
func TestFileScanner_EmptyRoot(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "scanner_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	scanner := NewFileScanner(stats_tracker.NewStatsTracker())
	inventory, err := scanner.Scan(tempDir)
	require.NoError(t, err)

	assert.Empty(t, inventory.Records)
	assert.Equal(t, 0, inventory.TotalFiles)
	assert.Equal(t, int64(0), inventory.TotalSize)
}

// Test the worker pool sizing floor
func TestOptimalWorkerCount_Minimum(t *testing.T) {
	workers := OptimalWorkerCount()

	assert.GreaterOrEqual(t, workers, minWorkers)
}

// Test that the scanner exposes its pool size
func TestFileScanner_Workers(t *testing.T) {
	scanner := NewFileScanner(stats_tracker.NewStatsTracker())
	assert.GreaterOrEqual(t, scanner.Workers(), minWorkers)
}
