package contracts

import (
	"context"

	"github.com/ncmink/biebie-cli/file_scanner/models"
)

// IInventoryUploader defines the interface for sending a scan inventory to the metadata API.
type IInventoryUploader interface {
	UploadInventory(ctx context.Context, inventory *models.ScanInventory) error
}
