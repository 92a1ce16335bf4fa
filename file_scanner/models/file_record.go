package models

// CandidateEntry is a discovered regular file that survived the
// inclusion filter. It is never mutated after discovery.
type CandidateEntry struct {
	Path string
	Size int64
}

// DirectoryBatch groups the surviving entries of one parent directory.
// Every entry in a batch shares the same parent; batches are disjoint
// and their union equals the full filtered entry set. Depth is the
// component count of the parent path, used to schedule deeper
// directories first.
type DirectoryBatch struct {
	Dir   string
	Files []CandidateEntry
	Depth int
}

// Category is the coarse media classification of a file.
type Category string

const (
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
	CategoryOther Category = "other"
)

// FileRecord is the externally visible result for one unique file.
// Exactly one record is retained per distinct fingerprint.
type FileRecord struct {
	Path        string   `json:"path"`
	ParentDir   string   `json:"parent_directory"`
	SizeBytes   int64    `json:"size_bytes"`
	ContentType string   `json:"content_type"`
	Fingerprint string   `json:"fingerprint_hex"`
	Category    Category `json:"category"`
}

// ScanInventory is the final result of a scan: records sorted by path
// ascending plus their aggregate totals.
type ScanInventory struct {
	Records    []FileRecord `json:"files"`
	TotalFiles int          `json:"total_files"`
	TotalSize  int64        `json:"total_size"`
}
