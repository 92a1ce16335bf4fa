package file_scanner

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ncmink/biebie-cli/file_scanner/models"
)

// defaultContentType is reported when neither content sniffing nor the
// extension table can identify the file.
const defaultContentType = "application/octet-stream"

// FileClassifier resolves content types and maps them to the coarse
// category stored on each record.
type FileClassifier struct{}

// NewFileClassifier initializes a new FileClassifier.
func NewFileClassifier() *FileClassifier {
	return &FileClassifier{}
}

// DetectContentType sniffs the file's leading bytes for its MIME type,
// falling back to the extension table and finally the generic binary
// type. It never fails: unreadable files classify as the default.
func (c *FileClassifier) DetectContentType(path string) string {
	if detected, err := mimetype.DetectFile(path); err == nil {
		return detected.String()
	}
	if byExtension := mime.TypeByExtension(filepath.Ext(path)); byExtension != "" {
		return byExtension
	}
	return defaultContentType
}

// Classify maps a content type onto one of the record categories by its
// top-level media type. Anything that is not an image or a video is
// "other".
func (c *FileClassifier) Classify(contentType string) models.Category {
	topLevel := contentType
	if slash := strings.Index(contentType, "/"); slash >= 0 {
		topLevel = contentType[:slash]
	}
	switch strings.ToLower(topLevel) {
	case "image":
		return models.CategoryImage
	case "video":
		return models.CategoryVideo
	default:
		return models.CategoryOther
	}
}
