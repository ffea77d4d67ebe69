package entity

import "time"

// ThumbnailPrefix is the sub-namespace for derived thumbnails. An original's
// thumbnail lives at ThumbnailPrefix + originalKey; there is no persisted
// link between the two.
const ThumbnailPrefix = "thumbnails/"

// Image describes an original just stored by the upload flow.
type Image struct {
	Key          string `json:"key"`
	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`

	// Timestamp is the yyyyMMdd_HHmmss component of the key.
	Timestamp string    `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageListItem is one row of the read-side view: an original joined with
// its thumbnail by name at listing time. ThumbnailURL falls back to the
// original's URL while generation is still in flight.
type ImageListItem struct {
	Name         string     `json:"name"`
	OriginalURL  string     `json:"originalUrl"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Size         int64      `json:"size"`
	LastModified *time.Time `json:"lastModified"`
}
