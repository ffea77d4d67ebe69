package image

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timestampLayout = "20060102_150405"

var extContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

// ContentTypeByExtension maps a lowercase extension to its content type,
// defaulting to application/octet-stream for anything unmapped.
func ContentTypeByExtension(ext string) string {
	if ct, ok := extContentTypes[strings.ToLower(ext)]; ok {
		return ct
	}

	return "application/octet-stream"
}

// generateKey derives the storage key for an uploaded file:
// {yyyyMMdd_HHmmss}_{8charHex}{ext}. The timestamp component is also
// returned separately for the upload response.
func generateKey(originalName string, now time.Time) (key, timestamp string) {
	ext := strings.ToLower(filepath.Ext(originalName))
	shortID := uuid.NewString()[:8]
	timestamp = now.Format(timestampLayout)

	return fmt.Sprintf("%s_%s%s", timestamp, shortID, ext), timestamp
}
