package file_scanner

import (
	"sync"
	"sync/atomic"
)

// DedupRegistry records the first path admitted for every fingerprint.
// All methods are safe for concurrent use.
type DedupRegistry struct {
	seen     sync.Map
	admitted atomic.Int64
}

// NewDedupRegistry initializes an empty DedupRegistry.
func NewDedupRegistry() *DedupRegistry {
	return &DedupRegistry{}
}

// Admit claims fingerprint for path. The insert is a single atomic
// operation, so exactly one caller per fingerprint wins no matter how
// many goroutines race on it; losers get the path that won.
func (r *DedupRegistry) Admit(fingerprint string, path string) (bool, string) {
	existing, loaded := r.seen.LoadOrStore(fingerprint, path)
	if loaded {
		return false, existing.(string)
	}
	r.admitted.Add(1)
	return true, path
}

// Representative returns the admitted path for fingerprint, if any.
func (r *DedupRegistry) Representative(fingerprint string) (string, bool) {
	existing, ok := r.seen.Load(fingerprint)
	if !ok {
		return "", false
	}
	return existing.(string), true
}

// Admitted returns the number of distinct fingerprints claimed so far.
func (r *DedupRegistry) Admitted() int64 {
	return r.admitted.Load()
}
