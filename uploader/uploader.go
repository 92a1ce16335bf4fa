package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	scanner_models "github.com/ncmink/biebie-cli/file_scanner/models"
	"github.com/ncmink/biebie-cli/uploader/contracts"
	"github.com/ncmink/biebie-cli/uploader/models"
	"io/ioutil"
	"net/http"
	"time"
)

// APIConfig implements the uploader interface for the metadata API.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

const (
	defaultTimeoutSeconds = 30
)

// NewInventoryUploader initializes a new uploader for the metadata API.
func NewInventoryUploader(config *APIConfig) contracts.IInventoryUploader {
	// Set default timeout if unset
	timeout := config.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}
	return &APIConfig{
		BaseURL:        config.BaseURL,
		APIKey:         config.APIKey,
		TimeoutSeconds: timeout,
	}
}

// UploadInventory posts the inventory to the configured endpoint as one
// JSON document stamped with the upload time. An empty inventory is a
// no-op; any non-2xx response is an error.
func (apiConfig *APIConfig) UploadInventory(ctx context.Context, inventory *scanner_models.ScanInventory) error {
	if apiConfig.BaseURL == "" {
		return fmt.Errorf("no API URL configured")
	}
	if inventory == nil || len(inventory.Records) == 0 {
		return nil
	}

	// Prepare the request body
	reqBody := models.InventoryUploadRequest{
		Files:         inventory.Records,
		ScanTimestamp: time.Now().UTC().Format(time.RFC3339),
		TotalFiles:    inventory.TotalFiles,
		TotalSize:     inventory.TotalSize,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("error marshalling request body: %v", err)
	}

	// Create a new HTTP request
	req, err := http.NewRequestWithContext(ctx, "POST", apiConfig.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiConfig.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiConfig.APIKey)
	}

	client := &http.Client{Timeout: time.Duration(apiConfig.TimeoutSeconds) * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("request canceled: %v", err)
		}
		return fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := ioutil.ReadAll(resp.Body)
		var apiError models.APIError
		if err := json.Unmarshal(body, &apiError); err != nil || apiError.Error.Message == "" {
			return fmt.Errorf("API request failed with status code '%d' - %s", resp.StatusCode, string(body))
		}
		return fmt.Errorf("API request failed with status code '%d' - %s", resp.StatusCode, apiError.Error.Message)
	}

	return nil
}
