//go:build !unix

package file_scanner

import (
	"io"
	"os"
)

// mapReadOnly falls back to a buffered read where memory mapping is not
// available. The digest is identical either way.
func mapReadOnly(file *os.File, size int64) ([]byte, func(), error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, nil, err
	}
	return data, func() {}, nil
}
