package response

type Upload struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	URL              string `json:"url"`
	Size             int64  `json:"size"`
	Timestamp        string `json:"timestamp"`
}

type Image struct {
	Name         string  `json:"name"`
	OriginalURL  string  `json:"originalUrl"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	Size         int64   `json:"size"`
	LastModified *string `json:"lastModified"`
}

type List struct {
	Success bool    `json:"success"`
	Images  []Image `json:"images"`
	Count   int     `json:"count"`
}

type Error struct {
	Error string `json:"error"`
}
