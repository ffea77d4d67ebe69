package image

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey_Pattern(t *testing.T) {
	keyRe := regexp.MustCompile(`^\d{8}_\d{6}_[0-9a-f]{8}\.(jpg|jpeg|png|gif|webp|bmp)$`)

	for _, name := range []string{
		"photo.jpg",
		"photo.jpeg",
		"scan.png",
		"anim.gif",
		"pic.webp",
		"old.bmp",
		"SHOUTING.JPG",
	} {
		key, _ := generateKey(name, time.Now())
		assert.Regexp(t, keyRe, key, "original name %q", name)
	}
}

func TestGenerateKey_TimestampComponent(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	key, timestamp := generateKey("photo.jpg", now)

	require.Equal(t, "20250314_150926", timestamp)
	assert.Regexp(t, `^20250314_150926_[0-9a-f]{8}\.jpg$`, key)
}

func TestGenerateKey_Unique(t *testing.T) {
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, _ := generateKey("photo.jpg", now)
		require.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}

func TestContentTypeByExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".jpg", "image/jpeg"},
		{".jpeg", "image/jpeg"},
		{".png", "image/png"},
		{".gif", "image/gif"},
		{".webp", "image/webp"},
		{".bmp", "image/bmp"},
		{".JPG", "image/jpeg"},
		{".tiff", "application/octet-stream"},
		{"", "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentTypeByExtension(tt.ext), "ext %q", tt.ext)
	}
}
