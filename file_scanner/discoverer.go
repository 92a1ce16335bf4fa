package file_scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ncmink/biebie-cli/file_scanner/models"
	contracts2 "github.com/ncmink/biebie-cli/stats_tracker/contracts"
)

// minFileSize is the smallest file the pipeline considers; anything
// below it is filtered during discovery.
const minFileSize = 1024

// DirectoryDiscoverer walks a tree and groups the eligible files into
// per-directory batches.
type DirectoryDiscoverer struct {
	stats contracts2.IStatsTracker
}

// NewDirectoryDiscoverer initializes a new DirectoryDiscoverer.
func NewDirectoryDiscoverer(stats contracts2.IStatsTracker) *DirectoryDiscoverer {
	return &DirectoryDiscoverer{stats: stats}
}

// Discover walks rootDir and returns one batch per directory that holds
// at least one eligible file, with deeper directories first. Unreadable
// directories are skipped and unstatable files counted as failed; the
// walk itself never fails.
func (d *DirectoryDiscoverer) Discover(rootDir string) []models.DirectoryBatch {
	groups := make(map[string][]models.CandidateEntry)

	_ = filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		d.stats.AddDiscovered(1)

		info, err := entry.Info()
		if err != nil {
			d.stats.AddFailed(1)
			return nil
		}
		if !shouldProcess(entry.Name(), info.Size()) {
			d.stats.AddFiltered(1)
			return nil
		}

		dir := filepath.Dir(path)
		groups[dir] = append(groups[dir], models.CandidateEntry{Path: path, Size: info.Size()})
		return nil
	})

	batches := make([]models.DirectoryBatch, 0, len(groups))
	for dir, files := range groups {
		batches = append(batches, models.DirectoryBatch{Dir: dir, Files: files, Depth: pathDepth(dir)})
	}
	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].Depth > batches[j].Depth
	})
	return batches
}

// shouldProcess applies the inclusion rules: no hidden files, nothing
// under minFileSize.
func shouldProcess(name string, size int64) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return size >= minFileSize
}

// pathDepth counts the non-empty components of path.
func pathDepth(path string) int {
	return len(strings.FieldsFunc(path, func(r rune) bool {
		return r == os.PathSeparator
	}))
}
