//go:build unix

package file_scanner

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapReadOnly maps size bytes of file as a private read-only region and
// returns the bytes together with a release function that unmaps them.
func mapReadOnly(file *os.File, size int64) ([]byte, func(), error) {
	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		_ = unix.Munmap(data)
	}
	return data, release, nil
}
