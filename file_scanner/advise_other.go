//go:build !linux

package file_scanner

// fadvise is Linux-specific; everywhere else the hints are no-ops.

func adviseRandom(fd uintptr, size int64) {}

func adviseWillNeed(fd uintptr, offset, length int64) {}

func adviseDontNeed(fd uintptr, offset, length int64) {}
