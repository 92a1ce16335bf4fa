//go:build linux

package file_scanner

import "golang.org/x/sys/unix"

// Access-pattern hints for the page cache. Failures are ignored;
// the hints only affect read-ahead, never the bytes returned.

func adviseRandom(fd uintptr, size int64) {
	_ = unix.Fadvise(int(fd), 0, size, unix.FADV_RANDOM)
}

func adviseWillNeed(fd uintptr, offset, length int64) {
	_ = unix.Fadvise(int(fd), offset, length, unix.FADV_WILLNEED)
}

func adviseDontNeed(fd uintptr, offset, length int64) {
	_ = unix.Fadvise(int(fd), offset, length, unix.FADV_DONTNEED)
}
