package uploader

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	scanner_models "github.com/ncmink/biebie-cli/file_scanner/models"
	"github.com/ncmink/biebie-cli/uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInventory() *scanner_models.ScanInventory {
	return &scanner_models.ScanInventory{
		Records: []scanner_models.FileRecord{
			{
				Path:        "/data/photos/trip.jpg",
				ParentDir:   "/data/photos",
				SizeBytes:   204800,
				ContentType: "image/jpeg",
				Fingerprint: "0123456789abcdef0123456789abcdef",
				Category:    scanner_models.CategoryImage,
			},
			{
				Path:        "/data/docs/report.pdf",
				ParentDir:   "/data/docs",
				SizeBytes:   102400,
				ContentType: "application/pdf",
				Fingerprint: "fedcba9876543210fedcba9876543210",
				Category:    scanner_models.CategoryOther,
			},
		},
		TotalFiles: 2,
		TotalSize:  307200,
	}
}

// Test that the inventory is posted as one JSON document with the expected headers
func TestInventoryUploader_PostsInventory(t *testing.T) {
	var captured models.InventoryUploadRequest
	var capturedHeader http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeader = r.Header.Clone()
		assert.Equal(t, http.MethodPost, r.Method)

		body, _ := ioutil.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	apiUploader := NewInventoryUploader(&APIConfig{BaseURL: server.URL, APIKey: "secret-token"})

	err := apiUploader.UploadInventory(context.Background(), testInventory())
	require.NoError(t, err)

	assert.Equal(t, "application/json", capturedHeader.Get("Content-Type"))
	assert.Equal(t, "Bearer secret-token", capturedHeader.Get("Authorization"))

	assert.Len(t, captured.Files, 2)
	assert.Equal(t, 2, captured.TotalFiles)
	assert.Equal(t, int64(307200), captured.TotalSize)

	_, err = time.Parse(time.RFC3339, captured.ScanTimestamp)
	assert.NoError(t, err)
}

// Test that an empty inventory sends nothing and succeeds
func TestInventoryUploader_EmptyInventoryIsNoOp(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	apiUploader := NewInventoryUploader(&APIConfig{BaseURL: server.URL})

	err := apiUploader.UploadInventory(context.Background(), &scanner_models.ScanInventory{})
	require.NoError(t, err)
	err = apiUploader.UploadInventory(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, requests)
}

// Test that a non-2xx response surfaces the API error message
func TestInventoryUploader_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"message":"bad payload"}}`))
	}))
	defer server.Close()

	apiUploader := NewInventoryUploader(&APIConfig{BaseURL: server.URL})

	err := apiUploader.UploadInventory(context.Background(), testInventory())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "bad payload")
}

// Test that a non-JSON error body still produces a useful error
func TestInventoryUploader_PlainErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	apiUploader := NewInventoryUploader(&APIConfig{BaseURL: server.URL})

	err := apiUploader.UploadInventory(context.Background(), testInventory())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "boom")
}

// Test that a missing endpoint is rejected before any request is made
func TestInventoryUploader_RequiresURL(t *testing.T) {
	apiUploader := NewInventoryUploader(&APIConfig{})

	err := apiUploader.UploadInventory(context.Background(), testInventory())
	assert.Error(t, err)
}

// Test that cancellation is reported as such
func TestInventoryUploader_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	apiUploader := NewInventoryUploader(&APIConfig{BaseURL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := apiUploader.UploadInventory(ctx, testInventory())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canceled")
}
