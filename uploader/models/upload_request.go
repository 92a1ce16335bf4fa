package models

import (
	scanner_models "github.com/ncmink/biebie-cli/file_scanner/models"
)

// InventoryUploadRequest is the JSON body posted to the metadata API.
type InventoryUploadRequest struct {
	Files         []scanner_models.FileRecord `json:"files"`
	ScanTimestamp string                      `json:"scan_timestamp"`
	TotalFiles    int                         `json:"total_files"`
	TotalSize     int64                       `json:"total_size"`
}

// APIError represents the error response payload from the metadata API.
type APIError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
