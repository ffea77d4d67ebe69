package dto

// ImageCreated is the payload published for every stored original and
// consumed by the thumbnail controller.
type ImageCreated struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
