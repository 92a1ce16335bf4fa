package models

// ScanStats is a point-in-time snapshot of the run counters.
type ScanStats struct {
	Discovered     int64
	Filtered       int64
	Processed      int64
	Failed         int64
	Uniques        int64
	Duplicates     int64
	UniqueBytes    int64
	DuplicateBytes int64
}
