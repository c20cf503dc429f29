package http

type UploadResponse struct {
	Message      string  `json:"message"`
	MediaID      string  `json:"media_id"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}
