package contracts

import "github.com/ncmink/biebie-cli/file_scanner/models"

// IFileScanner drives the scan pipeline from discovery to the final
// deduplicated inventory.
type IFileScanner interface {
	Scan(rootDir string) (*models.ScanInventory, error)
	Workers() int
}
